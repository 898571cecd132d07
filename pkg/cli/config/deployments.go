package config

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/utils/safe"
)

// Deployments holds the paths of the static deployment config and the
// login-to-Slack roster. Both files are optional.
type Deployments struct {
	configPath string
	rosterPath string
}

// Flags returns CLI flags for the static configuration files
func (x *Deployments) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "deployments-config",
			Usage:       "Path to the deployment configuration TOML file",
			Category:    "Config",
			Sources:     cli.EnvVars("IRIS_DEPLOYMENTS_CONFIG"),
			Destination: &x.configPath,
		},
		&cli.StringFlag{
			Name:        "roster",
			Usage:       "Path to the GitHub-login-to-Slack-ID roster CSV file",
			Category:    "Config",
			Sources:     cli.EnvVars("IRIS_ROSTER"),
			Destination: &x.rosterPath,
		},
	}
}

// LoadConfig reads the deployment configuration. A missing path yields an
// empty config.
func (x *Deployments) LoadConfig() (model.DeploymentConfig, error) {
	if x.configPath == "" {
		return model.DeploymentConfig{}, nil
	}

	// #nosec G304 -- path comes from CLI flag, not user input
	f, err := os.Open(x.configPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open deployment config", goerr.V("path", x.configPath))
	}
	defer safe.Close(context.Background(), f)

	var doc struct {
		Deployments model.DeploymentConfig `toml:"deployments"`
	}
	if err := toml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse deployment config", goerr.V("path", x.configPath))
	}

	if doc.Deployments == nil {
		return model.DeploymentConfig{}, nil
	}
	return doc.Deployments, nil
}

// LoadRoster reads the roster CSV. The file must have a header row with
// github_login and slack_id columns; extra columns are ignored. A missing
// path yields an empty roster.
func (x *Deployments) LoadRoster() (*model.Roster, error) {
	if x.rosterPath == "" {
		return model.NewRoster(nil), nil
	}

	// #nosec G304 -- path comes from CLI flag, not user input
	f, err := os.Open(x.rosterPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open roster", goerr.V("path", x.rosterPath))
	}
	defer safe.Close(context.Background(), f)

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read roster header", goerr.V("path", x.rosterPath))
	}

	loginCol, slackCol := -1, -1
	for i, name := range header {
		switch name {
		case "github_login":
			loginCol = i
		case "slack_id":
			slackCol = i
		}
	}
	if loginCol < 0 || slackCol < 0 {
		return nil, goerr.New("roster requires github_login and slack_id columns",
			goerr.V("path", x.rosterPath), goerr.V("header", header))
	}

	var entries []model.RosterEntry
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read roster row", goerr.V("path", x.rosterPath))
		}
		entries = append(entries, model.RosterEntry{
			GitHubLogin: record[loginCol],
			SlackID:     record[slackCol],
		})
	}

	return model.NewRoster(entries), nil
}

func (x Deployments) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.configPath),
		slog.String("roster", x.rosterPath),
	)
}

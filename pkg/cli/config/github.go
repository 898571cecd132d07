package config

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	githubsvc "github.com/secmon-lab/iris/pkg/service/github"
)

// GitHub holds configuration for the GitHub API client. Either a personal
// access token or a full GitHub App credential set must be provided.
type GitHub struct {
	token          string
	appID          int64
	installationID int64
	privateKey     string
	org            string
}

// Flags returns CLI flags for GitHub configuration
func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub access token (alternative to App credentials)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("IRIS_GITHUB_TOKEN"),
			Destination: &x.token,
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("IRIS_GITHUB_APP_ID"),
			Destination: &x.appID,
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App Installation ID",
			Category:    "GitHub",
			Sources:     cli.EnvVars("IRIS_GITHUB_APP_INSTALLATION_ID"),
			Destination: &x.installationID,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM string or file path)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("IRIS_GITHUB_APP_PRIVATE_KEY"),
			Destination: &x.privateKey,
		},
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "GitHub organization for conventional repository lookup",
			Category:    "GitHub",
			Required:    true,
			Sources:     cli.EnvVars("IRIS_GITHUB_ORG"),
			Destination: &x.org,
		},
	}
}

// Organization returns the configured GitHub organization
func (x *GitHub) Organization() string {
	return x.org
}

// Configure creates a GitHub Service from the configured credentials
func (x *GitHub) Configure(ctx context.Context) (githubsvc.Service, error) {
	httpClient, err := x.httpClient(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := githubsvc.New(httpClient)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub service")
	}

	return svc, nil
}

func (x *GitHub) httpClient(ctx context.Context) (*http.Client, error) {
	if x.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: x.token})
		return oauth2.NewClient(ctx, ts), nil
	}

	if x.appID == 0 || x.installationID == 0 || x.privateKey == "" {
		return nil, goerr.New("GitHub credentials required: set --github-token, or --github-app-id, --github-app-installation-id and --github-app-private-key")
	}

	var key []byte
	// #nosec G304 -- path comes from CLI flag, not user input
	if data, err := os.ReadFile(x.privateKey); err == nil {
		key = data
	} else {
		key = []byte(x.privateKey)
	}

	tr, err := ghinstallation.New(http.DefaultTransport, x.appID, x.installationID, key)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}

	return &http.Client{Transport: tr}, nil
}

// LogValue returns log attributes for the GitHub configuration (secrets hidden)
func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("token", x.token != ""),
		slog.Int64("app_id", x.appID),
		slog.Int64("installation_id", x.installationID),
		slog.String("org", x.org),
	)
}

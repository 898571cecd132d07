package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	slacksvc "github.com/secmon-lab/iris/pkg/service/slack"
)

// Slack holds configuration for the Slack API client
type Slack struct {
	botToken     string
	appID        string
	historyLimit int64
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Category:    "Slack",
			Required:    true,
			Sources:     cli.EnvVars("IRIS_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-app-id",
			Usage:       "Slack App ID used to recognize this app's own messages",
			Category:    "Slack",
			Required:    true,
			Sources:     cli.EnvVars("IRIS_SLACK_APP_ID"),
			Destination: &x.appID,
		},
		&cli.Int64Flag{
			Name:        "slack-history-limit",
			Usage:       "Number of recent channel messages scanned for a prior thread",
			Category:    "Slack",
			Value:       slacksvc.DefaultHistoryLimit,
			Sources:     cli.EnvVars("IRIS_SLACK_HISTORY_LIMIT"),
			Destination: &x.historyLimit,
		},
	}
}

// Configure creates a Slack Service from the configured flags
func (x *Slack) Configure() (slacksvc.Service, error) {
	svc, err := slacksvc.New(x.botToken, x.appID,
		slacksvc.WithHistoryLimit(int(x.historyLimit)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Slack service")
	}

	return svc, nil
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("app_id", x.appID),
		slog.Int64("history_limit", x.historyLimit),
	)
}

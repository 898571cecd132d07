package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/iris/pkg/cli/config"
	httpctrl "github.com/secmon-lab/iris/pkg/controller/http"
	"github.com/secmon-lab/iris/pkg/usecase"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var webhookSecret string
	var githubCfg config.GitHub
	var slackCfg config.Slack
	var deployCfg config.Deployments

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("IRIS_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Shared bearer token expected on webhook deliveries",
			Required:    true,
			Sources:     cli.EnvVars("IRIS_WEBHOOK_SECRET"),
			Destination: &webhookSecret,
		},
	}
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, deployCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start webhook intake server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			githubSvc, err := githubCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure GitHub client")
			}

			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack client")
			}

			deployments, err := deployCfg.LoadConfig()
			if err != nil {
				return goerr.Wrap(err, "failed to load deployment config")
			}

			roster, err := deployCfg.LoadRoster()
			if err != nil {
				return goerr.Wrap(err, "failed to load roster")
			}

			logging.Default().Info("configuration loaded",
				"github", githubCfg,
				"slack", slackCfg,
				"files", deployCfg,
				"deployments", len(deployments),
				"roster", roster.Len(),
			)

			uc := usecase.New(githubSvc, slackSvc,
				usecase.WithDeployments(deployments),
				usecase.WithRoster(roster),
				usecase.WithOrganization(githubCfg.Organization()),
			)

			srv := httpctrl.New(uc.Webhook, webhookSecret)

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("starting HTTP server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "failed to serve HTTP")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("shutting down", "signal", sig.String())
			case <-ctx.Done():
				logging.Default().Info("shutting down", "reason", ctx.Err())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}

			return nil
		},
	}
}

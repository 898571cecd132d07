package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/iris/pkg/cli/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadDeploymentConfig(t *testing.T) {
	path := writeFile(t, "deployments.toml", `
[deployments.api]
environment = "production"

  [deployments.api.github]
  repository = "acme/api-server"
  workflow = "deploy.yml"

  [deployments.api.slack]
  channel = "C0DEPLOY"

[deployments.worker]

  [deployments.worker.slack]
  channel = "C0WORKER"
`)

	d := config.NewDeploymentsForTest(path, "")

	cfg, err := d.LoadConfig()
	gt.NoError(t, err).Required()
	gt.Number(t, len(cfg)).Equal(2)

	api, ok := cfg.Entry("api")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, api.Repository()).Equal("acme/api-server")
	gt.Value(t, api.Channel()).Equal("C0DEPLOY")
	gt.Value(t, api.Environment).Equal("production")
	gt.Value(t, api.GitHub.Workflow).Equal("deploy.yml")

	worker, ok := cfg.Entry("worker")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, worker.Repository()).Equal("")
	gt.Value(t, worker.Channel()).Equal("C0WORKER")
}

func TestLoadDeploymentConfigMissingPath(t *testing.T) {
	var d config.Deployments

	cfg, err := d.LoadConfig()
	gt.NoError(t, err).Required()
	gt.Number(t, len(cfg)).Equal(0)
}

func TestLoadDeploymentConfigInvalidTOML(t *testing.T) {
	path := writeFile(t, "deployments.toml", `[deployments.api`)

	d := config.NewDeploymentsForTest(path, "")

	_, err := d.LoadConfig()
	gt.Error(t, err)
}

func TestLoadRoster(t *testing.T) {
	path := writeFile(t, "roster.csv", `github_login,slack_id,team
alice,U0ALICE,platform
bob,U0BOB,payments
`)

	d := config.NewDeploymentsForTest("", path)

	roster, err := d.LoadRoster()
	gt.NoError(t, err).Required()
	gt.Number(t, roster.Len()).Equal(2)

	id, ok := roster.SlackIDFor("alice")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, id).Equal("U0ALICE")

	_, ok = roster.SlackIDFor("carol")
	gt.Value(t, ok).Equal(false)
}

func TestLoadRosterMissingColumns(t *testing.T) {
	path := writeFile(t, "roster.csv", `login,slack
alice,U0ALICE
`)

	d := config.NewDeploymentsForTest("", path)

	_, err := d.LoadRoster()
	gt.Error(t, err)
}

func TestLoadRosterMissingPath(t *testing.T) {
	var d config.Deployments

	roster, err := d.LoadRoster()
	gt.NoError(t, err).Required()
	gt.Number(t, roster.Len()).Equal(0)
}

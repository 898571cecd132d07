package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/iris/pkg/domain/model"
	githubsvc "github.com/secmon-lab/iris/pkg/service/github"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

// DeploymentUseCase resolves a deployment name to repository coordinates.
// Results are deliberately not cached: the static config is free to read
// and a repository that was missing can come into existence later.
type DeploymentUseCase struct {
	github githubsvc.Service
	config model.DeploymentConfig
	org    string
}

// NewDeploymentUseCase creates a DeploymentUseCase
func NewDeploymentUseCase(github githubsvc.Service, config model.DeploymentConfig, org string) *DeploymentUseCase {
	return &DeploymentUseCase{
		github: github,
		config: config,
		org:    org,
	}
}

// Lookup resolves a deployment name. A config entry that already names a
// repository is returned as-is with zero network calls. Otherwise the
// conventional "org/name" repository is looked up remotely and, when found,
// merged into a copy of the entry. nil means the deployment is unknown.
func (uc *DeploymentUseCase) Lookup(ctx context.Context, name string) (*model.DeploymentEntry, error) {
	if name == "" {
		return nil, goerr.New("deployment name is required")
	}

	entry, _ := uc.config.Entry(name)
	if entry.Repository() != "" {
		return entry, nil
	}

	fullName := uc.org + "/" + name
	repo, err := uc.github.GetRepository(ctx, fullName)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		logging.From(ctx).Debug("deployment has no resolvable repository",
			"deployment", name, "repository", fullName)
		return nil, nil
	}

	merged := entry.Clone()
	if merged.GitHub == nil {
		merged.GitHub = &model.GitHubTarget{}
	}
	merged.GitHub.Repository = repo.Ref.FullName()
	return merged, nil
}

package usecase

import (
	"github.com/secmon-lab/iris/pkg/domain/model"
	githubsvc "github.com/secmon-lab/iris/pkg/service/github"
	slacksvc "github.com/secmon-lab/iris/pkg/service/slack"
)

// UseCases aggregates the resolution logic of the bridge
type UseCases struct {
	github githubsvc.Service
	slack  slacksvc.Service

	roster      *model.Roster
	deployments model.DeploymentConfig
	org         string

	Identity   *IdentityUseCase
	Deployment *DeploymentUseCase
	Webhook    *WebhookUseCase
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithRoster sets the static login-to-Slack roster
func WithRoster(roster *model.Roster) Option {
	return func(uc *UseCases) {
		uc.roster = roster
	}
}

// WithDeployments sets the static deployment configuration
func WithDeployments(cfg model.DeploymentConfig) Option {
	return func(uc *UseCases) {
		uc.deployments = cfg
	}
}

// WithOrganization sets the GitHub organization used for conventional
// repository lookup of unconfigured deployments
func WithOrganization(org string) Option {
	return func(uc *UseCases) {
		uc.org = org
	}
}

// New creates the use case aggregate on top of the two gateways
func New(github githubsvc.Service, slack slacksvc.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		github:      github,
		slack:       slack,
		roster:      model.NewRoster(nil),
		deployments: model.DeploymentConfig{},
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Identity = NewIdentityUseCase(github, slack, uc.roster)
	uc.Deployment = NewDeploymentUseCase(github, uc.deployments, uc.org)
	uc.Webhook = NewWebhookUseCase(uc.Deployment, uc.Identity)

	return uc
}

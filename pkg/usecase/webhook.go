package usecase

import (
	"context"
	"net/http"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

// WebhookUseCase receives parsed deployment events from the intake and
// routes them to their event-kind handlers. It implements
// interfaces.Dispatcher.
type WebhookUseCase struct {
	deployment *DeploymentUseCase
	identity   *IdentityUseCase
}

// NewWebhookUseCase creates a WebhookUseCase
func NewWebhookUseCase(deployment *DeploymentUseCase, identity *IdentityUseCase) *WebhookUseCase {
	return &WebhookUseCase{
		deployment: deployment,
		identity:   identity,
	}
}

// Dispatch acknowledges a deployment event and returns the status code for
// the notifier.
// TODO: route to the rollout and continuous-deployment handlers once their
// trigger conditions are decided.
func (uc *WebhookUseCase) Dispatch(ctx context.Context, ev *model.Event) (int, error) {
	logging.From(ctx).Info("received deployment event",
		"event_id", ev.ID,
		"deployment", ev.Deployment,
		"environment", ev.Environment,
		"status", ev.Status,
		"phase", ev.Phase,
	)

	return http.StatusNoContent, nil
}

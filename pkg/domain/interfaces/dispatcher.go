package interfaces

import (
	"context"

	"github.com/secmon-lab/iris/pkg/domain/model"
)

// Dispatcher routes a parsed deployment event to its event-kind handler
// (rollout or continuous-deployment) and returns the HTTP status code to
// report back to the notifier.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev *model.Event) (int, error)
}

package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/iris/pkg/domain/types"
)

func TestDeploymentState(t *testing.T) {
	t.Run("all listed states are valid", func(t *testing.T) {
		for _, s := range types.AllDeploymentStates() {
			gt.Value(t, s.IsValid()).Equal(true)
		}
	})

	t.Run("parse accepts valid state", func(t *testing.T) {
		s, err := types.ParseDeploymentState("in_progress")
		gt.NoError(t, err).Required()
		gt.Value(t, s).Equal(types.DeploymentStateInProgress)
	})

	t.Run("parse rejects unknown state", func(t *testing.T) {
		_, err := types.ParseDeploymentState("deploying")
		gt.Value(t, err).NotNil()
	})

	t.Run("empty state is invalid", func(t *testing.T) {
		gt.Value(t, types.DeploymentState("").IsValid()).Equal(false)
	})
}

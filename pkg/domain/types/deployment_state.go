package types

import "fmt"

// DeploymentState represents the state of a GitHub deployment status
type DeploymentState string

const (
	DeploymentStateError      DeploymentState = "error"
	DeploymentStateFailure    DeploymentState = "failure"
	DeploymentStateInactive   DeploymentState = "inactive"
	DeploymentStateInProgress DeploymentState = "in_progress"
	DeploymentStateQueued     DeploymentState = "queued"
	DeploymentStatePending    DeploymentState = "pending"
	DeploymentStateSuccess    DeploymentState = "success"
)

// AllDeploymentStates returns all valid deployment states
func AllDeploymentStates() []DeploymentState {
	return []DeploymentState{
		DeploymentStateError,
		DeploymentStateFailure,
		DeploymentStateInactive,
		DeploymentStateInProgress,
		DeploymentStateQueued,
		DeploymentStatePending,
		DeploymentStateSuccess,
	}
}

// IsValid checks if the deployment state is valid
func (s DeploymentState) IsValid() bool {
	switch s {
	case DeploymentStateError,
		DeploymentStateFailure,
		DeploymentStateInactive,
		DeploymentStateInProgress,
		DeploymentStateQueued,
		DeploymentStatePending,
		DeploymentStateSuccess:
		return true
	default:
		return false
	}
}

// String returns the string representation of the deployment state
func (s DeploymentState) String() string {
	return string(s)
}

// ParseDeploymentState parses a string into a DeploymentState
func ParseDeploymentState(s string) (DeploymentState, error) {
	state := DeploymentState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid deployment state: %s", s)
	}
	return state, nil
}

package github

import (
	"context"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/domain/types"
)

// AutomationBotLogin is the login GitHub attributes automated activity to.
// It can never resolve to a human chat identity, so the gateway refuses to
// look it up at all.
const AutomationBotLogin = "github-actions[bot]"

// Service provides the GitHub operations the bridge needs. Upstream
// not-found responses and call failures are absorbed at this boundary: the
// method logs and returns a nil result with a nil error, so callers always
// receive a clean optional value. A non-nil error indicates invalid
// arguments at the call site, nothing else.
type Service interface {
	// GetUser fetches a user profile by login with process-lifetime caching.
	// The automation bot login returns nil without any remote call.
	GetUser(ctx context.Context, login string) (*model.GitHubUser, error)

	// GetRepository fetches a repository by its "owner/name" full name
	GetRepository(ctx context.Context, fullName string) (*model.Repository, error)

	// GetCommit fetches a single commit by SHA
	GetCommit(ctx context.Context, fullName, sha string) (*model.Commit, error)

	// GetLatestDeployment returns the most recent deployment for the given
	// environment and commit SHA, or nil when none exists
	GetLatestDeployment(ctx context.Context, ref model.RepoRef, environment, sha string) (*model.Deployment, error)

	// CreateDeploymentStatus attaches a status to a deployment. Anything but
	// an HTTP 201 from upstream yields nil.
	CreateDeploymentStatus(ctx context.Context, ref model.RepoRef, deploymentID int64, state types.DeploymentState) (*model.DeploymentStatus, error)

	// DispatchWorkflow triggers a workflow_dispatch event. Fire-and-forget:
	// it returns immediately and failures are only logged.
	DispatchWorkflow(ctx context.Context, ref model.RepoRef, gitRef, workflowFile string, inputs map[string]any)

	// ListPullRequestsForCommit returns the pull requests associated with a
	// commit, exactly as upstream reports them
	ListPullRequestsForCommit(ctx context.Context, ref model.RepoRef, sha string) ([]*model.PullRequest, error)

	// FindWorkflowRun returns the push-event run of the named workflow whose
	// head SHA equals sha. All identifiers are required.
	FindWorkflowRun(ctx context.Context, ref model.RepoRef, workflowFile, sha string) (*model.WorkflowRun, error)
}

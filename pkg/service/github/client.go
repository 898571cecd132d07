package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v60/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/domain/types"
	"github.com/secmon-lab/iris/pkg/utils/async"
	"github.com/secmon-lab/iris/pkg/utils/cache"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

type client struct {
	api     *gh.Client
	users   *cache.Map[string, *model.GitHubUser]
	baseURL string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the API base URL, mainly for tests
func WithBaseURL(rawURL string) Option {
	return func(c *client) {
		c.baseURL = rawURL
	}
}

// WithUserCache injects the login-to-profile cache. The cache is
// append-only and shared for the process lifetime.
func WithUserCache(users *cache.Map[string, *model.GitHubUser]) Option {
	return func(c *client) {
		c.users = users
	}
}

// New creates a GitHub Service on top of an authenticated HTTP client. The
// transport (token or GitHub App installation) is decided by the caller.
func New(httpClient *http.Client, opts ...Option) (Service, error) {
	if httpClient == nil {
		return nil, goerr.New("http client is required")
	}

	c := &client{
		api:   gh.NewClient(httpClient),
		users: cache.New[string, *model.GitHubUser](),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL != "" {
		raw := c.baseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		base, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", c.baseURL))
		}
		c.api.BaseURL = base
	}

	return c, nil
}

// logUpstream records an upstream failure. Not-found is a normal empty
// result and stays at debug level; everything else is an error.
func logUpstream(ctx context.Context, op string, resp *gh.Response, err error, attrs ...any) {
	logger := logging.From(ctx)
	attrs = append(attrs, "op", op)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		logger.Debug("github resource not found", attrs...)
		return
	}
	logger.Error("github api call failed", append(attrs, "error", err)...)
}

func (c *client) GetUser(ctx context.Context, login string) (*model.GitHubUser, error) {
	if login == "" || login == AutomationBotLogin {
		return nil, nil
	}

	if u, ok := c.users.Get(login); ok {
		return u, nil
	}

	user, resp, err := c.api.Users.Get(ctx, login)
	if err != nil {
		logUpstream(ctx, "get_user", resp, err, "login", login)
		return nil, nil
	}

	u := &model.GitHubUser{
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}
	c.users.Set(login, u)
	return u, nil
}

func (c *client) GetRepository(ctx context.Context, fullName string) (*model.Repository, error) {
	ref, err := model.ParseRepoRef(fullName)
	if err != nil {
		logging.From(ctx).Error("invalid repository name", "full_name", fullName, "error", err)
		return nil, nil
	}

	repo, resp, err := c.api.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		logUpstream(ctx, "get_repository", resp, err, "repository", fullName)
		return nil, nil
	}

	return &model.Repository{
		Ref:           ref,
		DefaultBranch: repo.GetDefaultBranch(),
		Private:       repo.GetPrivate(),
	}, nil
}

func (c *client) GetCommit(ctx context.Context, fullName, sha string) (*model.Commit, error) {
	ref, err := model.ParseRepoRef(fullName)
	if err != nil {
		logging.From(ctx).Error("invalid repository name", "full_name", fullName, "error", err)
		return nil, nil
	}

	commit, resp, err := c.api.Repositories.GetCommit(ctx, ref.Owner, ref.Name, sha, nil)
	if err != nil {
		logUpstream(ctx, "get_commit", resp, err, "repository", fullName, "sha", sha)
		return nil, nil
	}

	return &model.Commit{
		SHA:         commit.GetSHA(),
		Message:     commit.GetCommit().GetMessage(),
		AuthorLogin: commit.GetAuthor().GetLogin(),
		URL:         commit.GetHTMLURL(),
	}, nil
}

func (c *client) GetLatestDeployment(ctx context.Context, ref model.RepoRef, environment, sha string) (*model.Deployment, error) {
	opts := &gh.DeploymentsListOptions{
		SHA:         sha,
		Environment: environment,
		ListOptions: gh.ListOptions{PerPage: 1},
	}

	deployments, resp, err := c.api.Repositories.ListDeployments(ctx, ref.Owner, ref.Name, opts)
	if err != nil {
		logUpstream(ctx, "list_deployments", resp, err,
			"repository", ref.FullName(), "environment", environment, "sha", sha)
		return nil, nil
	}
	if len(deployments) == 0 {
		return nil, nil
	}

	d := deployments[0]
	return &model.Deployment{
		ID:          d.GetID(),
		SHA:         d.GetSHA(),
		Ref:         d.GetRef(),
		Environment: d.GetEnvironment(),
	}, nil
}

func (c *client) CreateDeploymentStatus(ctx context.Context, ref model.RepoRef, deploymentID int64, state types.DeploymentState) (*model.DeploymentStatus, error) {
	if !state.IsValid() {
		return nil, goerr.New("invalid deployment state", goerr.V("state", state.String()))
	}

	req := &gh.DeploymentStatusRequest{
		State: gh.String(state.String()),
	}

	status, resp, err := c.api.Repositories.CreateDeploymentStatus(ctx, ref.Owner, ref.Name, deploymentID, req)
	if err != nil {
		logUpstream(ctx, "create_deployment_status", resp, err,
			"repository", ref.FullName(), "deployment_id", deploymentID, "state", state.String())
		return nil, nil
	}
	if resp.StatusCode != http.StatusCreated {
		logging.From(ctx).Error("unexpected response creating deployment status",
			"repository", ref.FullName(), "deployment_id", deploymentID, "status_code", resp.StatusCode)
		return nil, nil
	}

	parsed, _ := types.ParseDeploymentState(status.GetState())
	return &model.DeploymentStatus{
		ID:    status.GetID(),
		State: parsed,
	}, nil
}

func (c *client) DispatchWorkflow(ctx context.Context, ref model.RepoRef, gitRef, workflowFile string, inputs map[string]any) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		req := gh.CreateWorkflowDispatchEventRequest{
			Ref:    gitRef,
			Inputs: inputs,
		}
		if _, err := c.api.Actions.CreateWorkflowDispatchEventByFileName(ctx, ref.Owner, ref.Name, workflowFile, req); err != nil {
			return goerr.Wrap(err, "failed to dispatch workflow",
				goerr.V("repository", ref.FullName()),
				goerr.V("workflow", workflowFile),
				goerr.V("ref", gitRef))
		}
		return nil
	})
}

func (c *client) ListPullRequestsForCommit(ctx context.Context, ref model.RepoRef, sha string) ([]*model.PullRequest, error) {
	prs, resp, err := c.api.PullRequests.ListPullRequestsWithCommit(ctx, ref.Owner, ref.Name, sha, nil)
	if err != nil {
		logUpstream(ctx, "list_pull_requests_for_commit", resp, err,
			"repository", ref.FullName(), "sha", sha)
		return nil, nil
	}

	result := make([]*model.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, &model.PullRequest{
			Number:      pr.GetNumber(),
			Title:       pr.GetTitle(),
			URL:         pr.GetHTMLURL(),
			AuthorLogin: pr.GetUser().GetLogin(),
		})
	}
	return result, nil
}

func (c *client) FindWorkflowRun(ctx context.Context, ref model.RepoRef, workflowFile, sha string) (*model.WorkflowRun, error) {
	if ref.IsEmpty() || workflowFile == "" || sha == "" {
		return nil, goerr.New("repository, workflow file and commit SHA are all required",
			goerr.V("repository", ref.FullName()),
			goerr.V("workflow", workflowFile),
			goerr.V("sha", sha))
	}

	opts := &gh.ListWorkflowRunsOptions{
		Event:   "push",
		HeadSHA: sha,
	}

	runs, resp, err := c.api.Actions.ListWorkflowRunsByFileName(ctx, ref.Owner, ref.Name, workflowFile, opts)
	if err != nil {
		logUpstream(ctx, "list_workflow_runs", resp, err,
			"repository", ref.FullName(), "workflow", workflowFile, "sha", sha)
		return nil, nil
	}

	for _, run := range runs.WorkflowRuns {
		// The API already filters by head SHA; re-check in case upstream
		// returns a broader match.
		if run.GetHeadSHA() != sha {
			continue
		}
		return &model.WorkflowRun{
			ID:         run.GetID(),
			Name:       run.GetName(),
			HeadSHA:    run.GetHeadSHA(),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
			URL:        run.GetHTMLURL(),
		}, nil
	}
	return nil, nil
}

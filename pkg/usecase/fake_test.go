package usecase_test

import (
	"context"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/domain/types"
	slacksvc "github.com/secmon-lab/iris/pkg/service/slack"
)

// fakeGitHub implements github.Service with canned data and call counters
type fakeGitHub struct {
	users map[string]*model.GitHubUser
	repos map[string]*model.Repository

	userCalls int
	repoCalls int
}

func (f *fakeGitHub) GetUser(ctx context.Context, login string) (*model.GitHubUser, error) {
	f.userCalls++
	return f.users[login], nil
}

func (f *fakeGitHub) GetRepository(ctx context.Context, fullName string) (*model.Repository, error) {
	f.repoCalls++
	return f.repos[fullName], nil
}

func (f *fakeGitHub) GetCommit(ctx context.Context, fullName, sha string) (*model.Commit, error) {
	return nil, nil
}

func (f *fakeGitHub) GetLatestDeployment(ctx context.Context, ref model.RepoRef, environment, sha string) (*model.Deployment, error) {
	return nil, nil
}

func (f *fakeGitHub) CreateDeploymentStatus(ctx context.Context, ref model.RepoRef, deploymentID int64, state types.DeploymentState) (*model.DeploymentStatus, error) {
	return nil, nil
}

func (f *fakeGitHub) DispatchWorkflow(ctx context.Context, ref model.RepoRef, gitRef, workflowFile string, inputs map[string]any) {
}

func (f *fakeGitHub) ListPullRequestsForCommit(ctx context.Context, ref model.RepoRef, sha string) ([]*model.PullRequest, error) {
	return nil, nil
}

func (f *fakeGitHub) FindWorkflowRun(ctx context.Context, ref model.RepoRef, workflowFile, sha string) (*model.WorkflowRun, error) {
	return nil, nil
}

// fakeSlack implements slack.Service with canned data and call counters
type fakeSlack struct {
	usersByEmail map[string]*model.SlackUser

	lookupCalls int
}

func (f *fakeSlack) LookupUserByEmail(ctx context.Context, email string) (*model.SlackUser, error) {
	f.lookupCalls++
	return f.usersByEmail[email], nil
}

func (f *fakeSlack) PostMessage(ctx context.Context, channelID, text string, opts ...slacksvc.PostOption) (*model.PostResult, error) {
	return nil, nil
}

func (f *fakeSlack) OpenConversation(ctx context.Context, userID string) (*model.Conversation, error) {
	return nil, nil
}

func (f *fakeSlack) SendDirectMessage(ctx context.Context, userID, text string, opts ...slacksvc.PostOption) (*model.PostResult, error) {
	return nil, nil
}

func (f *fakeSlack) GetHistory(ctx context.Context, channelID string, limit int, cursor string) (*model.HistoryPage, error) {
	return nil, nil
}

func (f *fakeSlack) FindThread(ctx context.Context, channelID, search string) (*model.Message, error) {
	return nil, nil
}

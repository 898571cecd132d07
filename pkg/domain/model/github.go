package model

import "github.com/secmon-lab/iris/pkg/domain/types"

// GitHubUser is a user profile fetched from GitHub. Email may be empty when
// the user hides it, which ends identity resolution for that login.
type GitHubUser struct {
	Login string
	Name  string
	Email string
}

// Commit is a single commit on a repository
type Commit struct {
	SHA         string
	Message     string
	AuthorLogin string
	URL         string
}

// Deployment is a GitHub deployment record
type Deployment struct {
	ID          int64
	SHA         string
	Ref         string
	Environment string
}

// DeploymentStatus is a status attached to a GitHub deployment
type DeploymentStatus struct {
	ID    int64
	State types.DeploymentState
}

// WorkflowRun is a GitHub Actions workflow run
type WorkflowRun struct {
	ID         int64
	Name       string
	HeadSHA    string
	Status     string
	Conclusion string
	URL        string
}

// PullRequest carries the subset of a pull request consumed by the bridge:
// enough to link it and to extract the author login.
type PullRequest struct {
	Number      int
	Title       string
	URL         string
	AuthorLogin string
}

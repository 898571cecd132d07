package model

// GitHubTarget is the source-control side of a deployment config entry
type GitHubTarget struct {
	Repository string `toml:"repository" json:"repository,omitempty"`
	Workflow   string `toml:"workflow" json:"workflow,omitempty"`
}

// SlackTarget is the chat side of a deployment config entry
type SlackTarget struct {
	Channel string `toml:"channel" json:"channel,omitempty"`
}

// DeploymentEntry is the static configuration of one deployment. All fields
// are optional; a missing repository is resolved remotely by the registry.
type DeploymentEntry struct {
	GitHub      *GitHubTarget `toml:"github" json:"github,omitempty"`
	Slack       *SlackTarget  `toml:"slack" json:"slack,omitempty"`
	Environment string        `toml:"environment" json:"environment,omitempty"`
}

// Repository returns the configured repository full name, or empty
func (e *DeploymentEntry) Repository() string {
	if e == nil || e.GitHub == nil {
		return ""
	}
	return e.GitHub.Repository
}

// Channel returns the configured Slack channel, or empty
func (e *DeploymentEntry) Channel() string {
	if e == nil || e.Slack == nil {
		return ""
	}
	return e.Slack.Channel
}

// Clone returns a deep copy of the entry. The loaded configuration is
// immutable for the process lifetime, so any merge happens on a copy.
func (e *DeploymentEntry) Clone() *DeploymentEntry {
	if e == nil {
		return &DeploymentEntry{}
	}
	clone := &DeploymentEntry{
		Environment: e.Environment,
	}
	if e.GitHub != nil {
		gh := *e.GitHub
		clone.GitHub = &gh
	}
	if e.Slack != nil {
		sl := *e.Slack
		clone.Slack = &sl
	}
	return clone
}

// DeploymentConfig maps deployment names to their static config entries
type DeploymentConfig map[string]*DeploymentEntry

// Entry returns the config entry for a deployment name, if any
func (c DeploymentConfig) Entry(name string) (*DeploymentEntry, bool) {
	e, ok := c[name]
	return e, ok
}

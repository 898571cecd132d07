package usecase

import (
	"context"

	"github.com/secmon-lab/iris/pkg/domain/model"
	githubsvc "github.com/secmon-lab/iris/pkg/service/github"
	slacksvc "github.com/secmon-lab/iris/pkg/service/slack"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

// IdentityUseCase maps GitHub logins to Slack identities. The static roster
// takes precedence; only unlisted logins fall back to remote lookups.
type IdentityUseCase struct {
	github githubsvc.Service
	slack  slacksvc.Service
	roster *model.Roster
}

// NewIdentityUseCase creates an IdentityUseCase
func NewIdentityUseCase(github githubsvc.Service, slack slacksvc.Service, roster *model.Roster) *IdentityUseCase {
	return &IdentityUseCase{
		github: github,
		slack:  slack,
		roster: roster,
	}
}

// FindSlackID resolves a GitHub login to a Slack user ID. Resolution stops
// at the first success: roster, then GitHub profile email, then Slack
// lookup by that email. A profile without an email is terminal; there is no
// further fallback. An empty result means the login could not be resolved.
func (uc *IdentityUseCase) FindSlackID(ctx context.Context, login string) (string, error) {
	if login == "" {
		return "", nil
	}

	if id, ok := uc.roster.SlackIDFor(login); ok {
		return id, nil
	}

	user, err := uc.github.GetUser(ctx, login)
	if err != nil {
		return "", err
	}
	if user == nil || user.Email == "" {
		logging.From(ctx).Debug("github login has no resolvable email", "login", login)
		return "", nil
	}

	slackUser, err := uc.slack.LookupUserByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if slackUser == nil {
		return "", nil
	}
	return slackUser.ID, nil
}

// ResolveAuthors maps the author logins of the given pull requests to Slack
// IDs, in the order the pull requests were supplied. Each login is attempted
// once; logins that fail to resolve are dropped from the result.
func (uc *IdentityUseCase) ResolveAuthors(ctx context.Context, prs []*model.PullRequest) (*model.MentionSet, error) {
	result := model.NewMentionSet()
	if len(prs) == 0 {
		return result, nil
	}

	seen := make(map[string]struct{}, len(prs))
	for _, pr := range prs {
		login := pr.AuthorLogin
		if login == "" {
			continue
		}
		if _, ok := seen[login]; ok {
			continue
		}
		seen[login] = struct{}{}

		id, err := uc.FindSlackID(ctx, login)
		if err != nil {
			return nil, err
		}
		if id == "" {
			continue
		}
		result.Add(login, id)
	}

	return result, nil
}

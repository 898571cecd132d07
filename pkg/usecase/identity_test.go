package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/usecase"
)

func TestFindSlackIDRoster(t *testing.T) {
	gh := &fakeGitHub{}
	sl := &fakeSlack{}
	roster := model.NewRoster([]model.RosterEntry{
		{GitHubLogin: "alice", SlackID: "U0ALICE"},
	})
	uc := usecase.New(gh, sl, usecase.WithRoster(roster))

	id, err := uc.Identity.FindSlackID(context.Background(), "alice")
	gt.NoError(t, err)
	gt.Value(t, id).Equal("U0ALICE")

	// roster hit must not reach either remote service
	gt.Number(t, gh.userCalls).Equal(0)
	gt.Number(t, sl.lookupCalls).Equal(0)
}

func TestFindSlackIDByEmail(t *testing.T) {
	gh := &fakeGitHub{
		users: map[string]*model.GitHubUser{
			"bob": {Login: "bob", Email: "bob@example.com"},
		},
	}
	sl := &fakeSlack{
		usersByEmail: map[string]*model.SlackUser{
			"bob@example.com": {ID: "U0BOB", Email: "bob@example.com"},
		},
	}
	uc := usecase.New(gh, sl)

	id, err := uc.Identity.FindSlackID(context.Background(), "bob")
	gt.NoError(t, err)
	gt.Value(t, id).Equal("U0BOB")
	gt.Number(t, gh.userCalls).Equal(1)
	gt.Number(t, sl.lookupCalls).Equal(1)
}

func TestFindSlackIDNoEmail(t *testing.T) {
	gh := &fakeGitHub{
		users: map[string]*model.GitHubUser{
			"carol": {Login: "carol"},
		},
	}
	sl := &fakeSlack{}
	uc := usecase.New(gh, sl)

	id, err := uc.Identity.FindSlackID(context.Background(), "carol")
	gt.NoError(t, err)
	gt.Value(t, id).Equal("")

	// a profile without an email is terminal, no chat lookup happens
	gt.Number(t, sl.lookupCalls).Equal(0)
}

func TestFindSlackIDUnknownLogin(t *testing.T) {
	uc := usecase.New(&fakeGitHub{}, &fakeSlack{})

	id, err := uc.Identity.FindSlackID(context.Background(), "ghost")
	gt.NoError(t, err)
	gt.Value(t, id).Equal("")
}

func TestResolveAuthorsDedup(t *testing.T) {
	gh := &fakeGitHub{
		users: map[string]*model.GitHubUser{
			"alice": {Login: "alice", Email: "alice@example.com"},
			"bob":   {Login: "bob"},
		},
	}
	sl := &fakeSlack{
		usersByEmail: map[string]*model.SlackUser{
			"alice@example.com": {ID: "U0ALICE"},
		},
	}
	uc := usecase.New(gh, sl)

	prs := []*model.PullRequest{
		{Number: 1, AuthorLogin: "alice"},
		{Number: 2, AuthorLogin: "alice"},
		{Number: 3, AuthorLogin: "bob"},
	}
	set, err := uc.Identity.ResolveAuthors(context.Background(), prs)
	gt.NoError(t, err).Required()

	gt.Number(t, set.Len()).Equal(1)
	gt.Array(t, set.Logins()).Equal([]string{"alice"})
	id, ok := set.SlackID("alice")
	gt.Value(t, ok).Equal(true)
	gt.Value(t, id).Equal("U0ALICE")

	// each login is attempted once, even the one that fails to resolve
	gt.Number(t, gh.userCalls).Equal(2)
}

func TestResolveAuthorsEmpty(t *testing.T) {
	gh := &fakeGitHub{}
	uc := usecase.New(gh, &fakeSlack{})

	set, err := uc.Identity.ResolveAuthors(context.Background(), nil)
	gt.NoError(t, err).Required()
	gt.Number(t, set.Len()).Equal(0)
	gt.Number(t, gh.userCalls).Equal(0)
}

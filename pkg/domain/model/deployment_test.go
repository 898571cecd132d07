package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/iris/pkg/domain/model"
)

func TestDeploymentEntry(t *testing.T) {
	t.Run("accessors are nil-safe", func(t *testing.T) {
		var e *model.DeploymentEntry
		gt.String(t, e.Repository()).Equal("")
		gt.String(t, e.Channel()).Equal("")
	})

	t.Run("clone of nil is an empty entry", func(t *testing.T) {
		var e *model.DeploymentEntry
		clone := e.Clone()
		gt.Value(t, clone).NotNil()
		gt.String(t, clone.Repository()).Equal("")
	})

	t.Run("clone does not share nested targets", func(t *testing.T) {
		e := &model.DeploymentEntry{
			GitHub:      &model.GitHubTarget{Repository: "acme/api-server"},
			Slack:       &model.SlackTarget{Channel: "C0123"},
			Environment: "production",
		}
		clone := e.Clone()
		clone.GitHub.Repository = "acme/other"
		clone.Slack.Channel = "C9999"

		gt.String(t, e.GitHub.Repository).Equal("acme/api-server")
		gt.String(t, e.Slack.Channel).Equal("C0123")
		gt.String(t, clone.Environment).Equal("production")
	})
}

func TestRepoRef(t *testing.T) {
	t.Run("parses owner/name", func(t *testing.T) {
		ref, err := model.ParseRepoRef("acme/api-server")
		gt.NoError(t, err).Required()
		gt.String(t, ref.Owner).Equal("acme")
		gt.String(t, ref.Name).Equal("api-server")
		gt.String(t, ref.FullName()).Equal("acme/api-server")
	})

	t.Run("rejects malformed names", func(t *testing.T) {
		for _, s := range []string{"", "acme", "/api-server", "acme/", "a/b/c"} {
			_, err := model.ParseRepoRef(s)
			gt.Value(t, err).NotNil()
		}
	})
}

func TestRoster(t *testing.T) {
	roster := model.NewRoster([]model.RosterEntry{
		{GitHubLogin: "alice", SlackID: "U001"},
		{GitHubLogin: "bob", SlackID: "U002"},
		{GitHubLogin: "alice", SlackID: "U999"},
	})

	t.Run("first matching entry wins", func(t *testing.T) {
		id, ok := roster.SlackIDFor("alice")
		gt.Value(t, ok).Equal(true)
		gt.String(t, id).Equal("U001")
	})

	t.Run("missing login is absent", func(t *testing.T) {
		_, ok := roster.SlackIDFor("mallory")
		gt.Value(t, ok).Equal(false)
	})

	t.Run("nil roster is empty", func(t *testing.T) {
		var r *model.Roster
		gt.Number(t, r.Len()).Equal(0)
		_, ok := r.SlackIDFor("alice")
		gt.Value(t, ok).Equal(false)
	})
}

func TestMentionSet(t *testing.T) {
	t.Run("keeps insertion order and first occurrence", func(t *testing.T) {
		s := model.NewMentionSet()
		s.Add("alice", "U001")
		s.Add("bob", "U002")
		s.Add("alice", "U999")

		gt.Array(t, s.Logins()).Equal([]string{"alice", "bob"})
		id, ok := s.SlackID("alice")
		gt.Value(t, ok).Equal(true)
		gt.String(t, id).Equal("U001")
		gt.Number(t, s.Len()).Equal(2)
	})
}

func TestMessageThreadRoot(t *testing.T) {
	t.Run("thread member replies to its root", func(t *testing.T) {
		m := &model.Message{TS: "2", ThreadTS: "1"}
		gt.String(t, m.ThreadRoot()).Equal("1")
	})

	t.Run("standalone message becomes the root", func(t *testing.T) {
		m := &model.Message{TS: "2"}
		gt.String(t, m.ThreadRoot()).Equal("2")
	})
}

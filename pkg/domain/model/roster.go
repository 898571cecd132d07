package model

// RosterEntry maps one GitHub login to a Slack user ID
type RosterEntry struct {
	GitHubLogin string
	SlackID     string
}

// Roster is the static login-to-Slack-identity table loaded at startup.
// It is immutable after construction.
type Roster struct {
	entries []RosterEntry
}

// NewRoster creates a roster from entries, keeping their order
func NewRoster(entries []RosterEntry) *Roster {
	return &Roster{entries: entries}
}

// SlackIDFor returns the Slack ID for a login. If a login appears more than
// once, the first entry wins.
func (r *Roster) SlackIDFor(login string) (string, bool) {
	if r == nil || login == "" {
		return "", false
	}
	for _, e := range r.entries {
		if e.GitHubLogin == login {
			return e.SlackID, true
		}
	}
	return "", false
}

// Len returns the number of roster entries
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

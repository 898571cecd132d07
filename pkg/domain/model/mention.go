package model

// MentionSet is an insertion-ordered mapping of GitHub login to Slack user
// ID. First occurrence of a login wins.
type MentionSet struct {
	logins []string
	ids    map[string]string
}

// NewMentionSet creates an empty MentionSet
func NewMentionSet() *MentionSet {
	return &MentionSet{
		ids: make(map[string]string),
	}
}

// Add records a resolved login. A login already present is ignored.
func (s *MentionSet) Add(login, slackID string) {
	if _, ok := s.ids[login]; ok {
		return
	}
	s.logins = append(s.logins, login)
	s.ids[login] = slackID
}

// Has reports whether the login is already present
func (s *MentionSet) Has(login string) bool {
	_, ok := s.ids[login]
	return ok
}

// SlackID returns the Slack ID resolved for a login
func (s *MentionSet) SlackID(login string) (string, bool) {
	id, ok := s.ids[login]
	return id, ok
}

// Logins returns the logins in insertion order
func (s *MentionSet) Logins() []string {
	return s.logins
}

// Len returns the number of resolved logins
func (s *MentionSet) Len() int {
	return len(s.logins)
}

package model

// SlackUser is a Slack user profile fetched by email
type SlackUser struct {
	ID    string
	Email string
	Name  string
}

// Message is a single message from a channel history page. AppID identifies
// the Slack app that posted it.
type Message struct {
	TS       string
	ThreadTS string
	AppID    string
	Text     string
}

// ThreadRoot returns the timestamp a reply to this message must reference:
// the message's own thread root if it is already part of a thread, otherwise
// the message itself becomes the root.
func (m *Message) ThreadRoot() string {
	if m.ThreadTS != "" {
		return m.ThreadTS
	}
	return m.TS
}

// HistoryPage is one page of channel history
type HistoryPage struct {
	Messages   []Message
	HasMore    bool
	NextCursor string
}

// PostResult is the result of posting a message
type PostResult struct {
	Channel string
	TS      string
}

// Conversation is an opened direct message channel
type Conversation struct {
	ID string
}

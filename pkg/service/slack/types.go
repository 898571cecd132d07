package slack

import (
	"context"

	"github.com/secmon-lab/iris/pkg/domain/model"
)

// DefaultHistoryLimit is the page size used when scanning channel history
// for a prior thread. No further pages are fetched: an older thread is an
// accepted miss.
const DefaultHistoryLimit = 10

// Service provides the Slack operations the bridge needs. As with the
// GitHub gateway, upstream failures are absorbed here: methods log and
// return nil so resolution logic always sees a clean optional value.
type Service interface {
	// LookupUserByEmail fetches a Slack user by email with process-lifetime
	// caching. Failed lookups are not cached so a later call can retry.
	LookupUserByEmail(ctx context.Context, email string) (*model.SlackUser, error)

	// PostMessage posts text to a channel. With WithThreadSearch, a prior
	// message of this bridge matching the search string makes the post a
	// threaded reply; WithBroadcast additionally mirrors the reply to the
	// channel.
	PostMessage(ctx context.Context, channelID, text string, opts ...PostOption) (*model.PostResult, error)

	// OpenConversation opens (or reuses) a direct message channel with a
	// user. An empty user ID is a no-op.
	OpenConversation(ctx context.Context, userID string) (*model.Conversation, error)

	// SendDirectMessage opens a DM with the user and posts into it. Returns
	// nil when the conversation could not be opened.
	SendDirectMessage(ctx context.Context, userID, text string, opts ...PostOption) (*model.PostResult, error)

	// GetHistory fetches one page of channel history. An empty channel ID is
	// a no-op.
	GetHistory(ctx context.Context, channelID string, limit int, cursor string) (*model.HistoryPage, error)

	// FindThread returns the most recent message in the channel that this
	// bridge posted and whose text contains search, or nil
	FindThread(ctx context.Context, channelID, search string) (*model.Message, error)
}

// PostOption configures a single PostMessage call
type PostOption func(*postConfig)

type postConfig struct {
	threadSearch string
	broadcast    bool
}

// WithThreadSearch attaches the message to the thread of a prior bridge
// message containing the given search string, when one is found
func WithThreadSearch(search string) PostOption {
	return func(c *postConfig) {
		c.threadSearch = search
	}
}

// WithBroadcast also sends a threaded reply to the whole channel
func WithBroadcast() PostOption {
	return func(c *postConfig) {
		c.broadcast = true
	}
}

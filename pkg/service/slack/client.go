package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/secmon-lab/iris/pkg/domain/model"
	"github.com/secmon-lab/iris/pkg/utils/cache"
	"github.com/secmon-lab/iris/pkg/utils/logging"
)

// client implements Service interface
type client struct {
	api          *slack.Client
	appID        string
	users        *cache.Map[string, *model.SlackUser]
	historyLimit int
	apiURL       string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHistoryLimit sets the page size for thread discovery
func WithHistoryLimit(limit int) Option {
	return func(c *client) {
		c.historyLimit = limit
	}
}

// WithAPIURL overrides the Slack API endpoint, mainly for tests
func WithAPIURL(rawURL string) Option {
	return func(c *client) {
		c.apiURL = rawURL
	}
}

// WithUserCache injects the email-to-user cache. The cache is append-only
// and shared for the process lifetime.
func WithUserCache(users *cache.Map[string, *model.SlackUser]) Option {
	return func(c *client) {
		c.users = users
	}
}

// New creates a Slack service. appID is this bridge's own Slack app ID,
// used to recognize its prior messages during thread discovery.
func New(token, appID string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if appID == "" {
		return nil, goerr.New("Slack app ID is required")
	}

	c := &client{
		appID:        appID,
		users:        cache.New[string, *model.SlackUser](),
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(c)
	}

	var slackOpts []slack.Option
	if c.apiURL != "" {
		slackOpts = append(slackOpts, slack.OptionAPIURL(c.apiURL))
	}
	c.api = slack.New(token, slackOpts...)

	return c, nil
}

func (c *client) LookupUserByEmail(ctx context.Context, email string) (*model.SlackUser, error) {
	if email == "" {
		return nil, nil
	}

	if u, ok := c.users.Get(email); ok {
		return u, nil
	}

	user, err := c.api.GetUserByEmailContext(ctx, email)
	if err != nil {
		// Not cached: a transient failure can be retried by a later call
		logging.From(ctx).Error("failed to look up slack user by email",
			"email", email, "error", err)
		return nil, nil
	}

	u := &model.SlackUser{
		ID:    user.ID,
		Email: user.Profile.Email,
		Name:  user.RealName,
	}
	c.users.Set(email, u)
	return u, nil
}

func (c *client) PostMessage(ctx context.Context, channelID, text string, opts ...PostOption) (*model.PostResult, error) {
	var cfg postConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	msgOpts := []slack.MsgOption{slack.MsgOptionText(text, false)}

	if cfg.threadSearch != "" {
		prior, err := c.FindThread(ctx, channelID, cfg.threadSearch)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			msgOpts = append(msgOpts, slack.MsgOptionTS(prior.ThreadRoot()))
			if cfg.broadcast {
				msgOpts = append(msgOpts, slack.MsgOptionBroadcast())
			}
		}
	}

	channel, ts, err := c.api.PostMessageContext(ctx, channelID, msgOpts...)
	if err != nil {
		logging.From(ctx).Error("failed to post slack message",
			"channel", channelID, "error", err)
		return nil, nil
	}

	return &model.PostResult{Channel: channel, TS: ts}, nil
}

func (c *client) OpenConversation(ctx context.Context, userID string) (*model.Conversation, error) {
	if userID == "" {
		return nil, nil
	}

	channel, _, _, err := c.api.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users:    []string{userID},
		ReturnIM: true,
	})
	if err != nil {
		logging.From(ctx).Error("failed to open slack conversation",
			"user_id", userID, "error", err)
		return nil, nil
	}

	return &model.Conversation{ID: channel.ID}, nil
}

func (c *client) SendDirectMessage(ctx context.Context, userID, text string, opts ...PostOption) (*model.PostResult, error) {
	conv, err := c.OpenConversation(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	return c.PostMessage(ctx, conv.ID, text, opts...)
}

func (c *client) GetHistory(ctx context.Context, channelID string, limit int, cursor string) (*model.HistoryPage, error) {
	if channelID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = c.historyLimit
	}

	resp, err := c.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     limit,
		Cursor:    cursor,
	})
	if err != nil {
		logging.From(ctx).Error("failed to fetch slack channel history",
			"channel", channelID, "error", err)
		return nil, nil
	}

	page := &model.HistoryPage{
		HasMore:    resp.HasMore,
		NextCursor: resp.ResponseMetaData.NextCursor,
	}
	for _, m := range resp.Messages {
		page.Messages = append(page.Messages, convertMessage(m))
	}
	return page, nil
}

func convertMessage(m slack.Message) model.Message {
	msg := model.Message{
		TS:       m.Timestamp,
		ThreadTS: m.ThreadTimestamp,
		Text:     m.Text,
	}
	if m.BotProfile != nil {
		msg.AppID = m.BotProfile.AppID
	}
	return msg
}

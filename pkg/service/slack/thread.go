package slack

import (
	"context"
	"strings"

	"github.com/secmon-lab/iris/pkg/domain/model"
)

// FindThread scans the latest page of channel history for the most recent
// message this bridge posted whose text contains search. Only one page is
// fetched; a matching thread older than that is treated as absent.
func (c *client) FindThread(ctx context.Context, channelID, search string) (*model.Message, error) {
	if channelID == "" || search == "" {
		return nil, nil
	}

	page, err := c.GetHistory(ctx, channelID, c.historyLimit, "")
	if err != nil {
		return nil, err
	}
	if page == nil || len(page.Messages) == 0 {
		return nil, nil
	}

	// The API returns messages newest first; the first match wins
	for i := range page.Messages {
		m := &page.Messages[i]
		if m.AppID != c.appID {
			continue
		}
		if strings.Contains(m.Text, search) {
			return m, nil
		}
	}
	return nil, nil
}

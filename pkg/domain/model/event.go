package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/iris/pkg/domain/types"
)

// Event is a parsed deployment-lifecycle notification. Every field of the
// payload is optional; which fields a handler needs depends on the event
// kind, so absence is resolved downstream, not here.
type Event struct {
	ID types.EventID `json:"-"`

	Deployment  string `json:"deployment,omitempty"`
	Environment string `json:"environment,omitempty"`
	SHA         string `json:"sha,omitempty"`
	Status      string `json:"status,omitempty"`
	Phase       string `json:"phase,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ParseEvent decodes a webhook body into an Event and assigns it a fresh
// event ID. An empty body or non-JSON content is rejected.
func ParseEvent(body []byte) (*Event, error) {
	if len(body) == 0 {
		return nil, goerr.New("empty request body")
	}

	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, goerr.Wrap(err, "invalid JSON body")
	}

	ev.ID = types.NewEventID()
	return &ev, nil
}

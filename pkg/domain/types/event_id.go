package types

import "github.com/google/uuid"

// EventID identifies a single inbound webhook event for log correlation
type EventID string

// NewEventID generates a new random EventID
func NewEventID() EventID {
	return EventID(uuid.New().String())
}

// String returns the string representation of the event ID
func (x EventID) String() string {
	return string(x)
}

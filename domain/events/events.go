// Package events defines the domain events emitted by the backend.
package events

import "time"

// Source identifies this service on the event bus.
const Source = "fitit.backend"

// Entity change actions.
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// EntityChanged records a committed mutation to a stored entity.
type EntityChanged struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// DetailType is the event's type name on the bus, e.g. "product.created".
func (e EntityChanged) DetailType() string {
	return e.Entity + "." + e.Action
}

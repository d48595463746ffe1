// Package types contains response shapes shared by the service and its
// transports.
package types

import "github.com/okian/fairway/internal/domain/model"

// Standings is the reconciled board.
type Standings struct {
	// Tournament is the live event name, empty when no pick matched.
	Tournament string        `json:"tournament"`
	Teams      []*model.Team `json:"teams"`
}

// Tournament carries the current event's display name.
type Tournament struct {
	Name string `json:"name"`
}

// Error is the failure body returned by the API.
type Error struct {
	Error string `json:"error"`
}

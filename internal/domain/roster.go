package domain

import "context"

// EventRoster is the list of students enrolled in a specific event.
// TotalEnrolled and CompletionRate are recomputed from the surviving student
// set after validation, not trusted from the backend.
// swagger:model EventRoster
type EventRoster struct {
	EventID        string     `json:"eventId"`
	Students       []*Student `json:"students"`
	TotalEnrolled  int        `json:"totalEnrolled"`
	CompletionRate float64    `json:"completionRate"`
}

// RosterService defines roster read operations.
type RosterService interface {
	GetRoster(ctx context.Context, eventID string, query RosterQuery) (*EventRoster, error)
}

package domain

import (
	"context"
	"fmt"
	"time"
)

// EventStatus is the lifecycle status of a training event.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusOngoing   EventStatus = "ongoing"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// RiskLevel is the derived enrollment-pressure indicator for an event.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Risk thresholds on the enrolled/capacity ratio.
const (
	riskHighRatio   = 0.85
	riskMediumRatio = 0.65
)

// Event represents a training event from the course-management backend.
// swagger:model Event
type Event struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	StartDate         time.Time   `json:"startDate"`
	EndDate           time.Time   `json:"endDate"`
	Location          string      `json:"location"`
	Instructor        string      `json:"instructor"`
	MaxCapacity       int         `json:"maxCapacity"`
	CurrentEnrollment int         `json:"currentEnrollment"`
	CEUCredits        int         `json:"ceuCredits"`
	RiskLevel         RiskLevel   `json:"riskLevel"`
	Status            EventStatus `json:"status"`
	Tags              []string    `json:"tags"`
}

// RiskLevelFor derives the risk level from enrollment pressure.
// Capacity 0 is high risk; ratios above 1.0 are passed through, not clamped.
func RiskLevelFor(enrolled, capacity int) RiskLevel {
	if capacity <= 0 {
		return RiskHigh
	}
	ratio := float64(enrolled) / float64(capacity)
	switch {
	case ratio >= riskHighRatio:
		return RiskHigh
	case ratio >= riskMediumRatio:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Validate checks structural requirements. Risk level is derived, never trusted
// from the source, so it is not validated here.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: event missing id", ErrMalformedRecord)
	}
	if e.Title == "" {
		return fmt.Errorf("%w: event %s missing title", ErrMalformedRecord, e.ID)
	}
	return nil
}

// DeriveRisk recomputes the risk level from current enrollment and capacity.
func (e *Event) DeriveRisk() {
	e.RiskLevel = RiskLevelFor(e.CurrentEnrollment, e.MaxCapacity)
}

// EventService defines the read operations backing the event views.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter, page PaginationParams) (events []*Event, total int, err error)
	GetEvent(ctx context.Context, id string) (*Event, error)
}

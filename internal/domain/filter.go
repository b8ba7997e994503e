package domain

import "time"

// EventFilter selects events. All active dimensions must match (logical AND);
// an empty status or risk-level set matches everything. Date bounds are
// forwarded to the backend rather than applied in memory.
type EventFilter struct {
	Search        string
	Status        []EventStatus
	RiskLevels    []RiskLevel
	Instructor    string
	MinCEUCredits int
	DateFrom      *time.Time
	DateTo        *time.Time
}

// StudentSortKey selects the roster sort column.
type StudentSortKey string

const (
	SortByLastName         StudentSortKey = "lastName"
	SortByLicenseState     StudentSortKey = "licenseState"
	SortByOccupation       StudentSortKey = "occupation"
	SortByProgress         StudentSortKey = "progress"
	SortByCompletionStatus StudentSortKey = "completionStatus"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// RosterQuery filters and sorts a roster view.
type RosterQuery struct {
	Search string
	SortBy StudentSortKey
	Order  SortOrder
}

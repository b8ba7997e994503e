package domain

import "context"

// BackendEventFilter carries the filter keys the course-management backend
// recognizes. Unrecognized keys never reach the wire; the backend ignores
// whatever it does not understand.
type BackendEventFilter struct {
	Search     string
	Status     string
	Instructor string
	DateFrom   string
	DateTo     string
}

// BackendStudentFilter carries the student-listing filter keys.
type BackendStudentFilter struct {
	Search  string
	EventID string
}

// CourseBackend fetches records from the external course-management API
// (or a test double). Implementations capture every transport and parse
// failure into ErrBackendUnavailable; they never panic past this boundary.
type CourseBackend interface {
	ListEvents(ctx context.Context, filter BackendEventFilter) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	GetRoster(ctx context.Context, eventID string) (*EventRoster, error)
	ListStudents(ctx context.Context, filter BackendStudentFilter) ([]*Student, error)
}

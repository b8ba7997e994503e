// Package query implements the in-memory filter/sort/paginate pipeline that
// backs the dashboard list views. All functions are pure: they operate on an
// already-fetched snapshot and never mutate their inputs.
package query

import (
	"strings"

	"trainingdash/internal/domain"
)

// FilterEvents returns the events matching every active filter dimension.
// Free-text search is a case-insensitive substring match against title,
// description, or instructor. Empty status/risk sets match everything.
func FilterEvents(events []*domain.Event, f domain.EventFilter) []*domain.Event {
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if matchesEvent(e, f) {
			out = append(out, e)
		}
	}
	return out
}

func matchesEvent(e *domain.Event, f domain.EventFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Instructor), q) {
			return false
		}
	}
	if len(f.Status) > 0 && !containsStatus(f.Status, e.Status) {
		return false
	}
	if len(f.RiskLevels) > 0 && !containsRisk(f.RiskLevels, e.RiskLevel) {
		return false
	}
	if f.Instructor != "" &&
		!strings.Contains(strings.ToLower(e.Instructor), strings.ToLower(f.Instructor)) {
		return false
	}
	if f.MinCEUCredits > 0 && e.CEUCredits < f.MinCEUCredits {
		return false
	}
	return true
}

func containsStatus(set []domain.EventStatus, s domain.EventStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func containsRisk(set []domain.RiskLevel, r domain.RiskLevel) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}

// FilterStudents returns the students whose first name, last name,
// occupation, license state, or clinic name contains the search text
// (case-insensitive). An empty search matches everything.
func FilterStudents(students []*domain.Student, search string) []*domain.Student {
	if search == "" {
		return students
	}
	q := strings.ToLower(search)
	out := make([]*domain.Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.FirstName), q) ||
			strings.Contains(strings.ToLower(s.LastName), q) ||
			strings.Contains(strings.ToLower(s.Occupation), q) ||
			strings.Contains(strings.ToLower(s.License.State), q) ||
			strings.Contains(strings.ToLower(s.Clinic.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

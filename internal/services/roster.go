package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trainingdash/internal/domain"
	"trainingdash/internal/query"
)

type rosterService struct {
	backend        domain.CourseBackend
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRosterService creates a RosterService over the course backend.
func NewRosterService(backend domain.CourseBackend, logger *slog.Logger, timeout time.Duration) domain.RosterService {
	return &rosterService{
		backend:        backend,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// GetRoster fetches the roster snapshot for one event, drops malformed
// student records with a warning, recomputes masked emails from the raw
// source, applies search and stable sort, and recomputes the aggregates from
// the surviving set.
func (s *rosterService) GetRoster(ctx context.Context, eventID string, q domain.RosterQuery) (*domain.EventRoster, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	roster, err := s.backend.GetRoster(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get roster: %w", err)
	}

	students := make([]*domain.Student, 0, len(roster.Students))
	for _, st := range roster.Students {
		if st == nil {
			continue
		}
		if err := st.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed student record", "event_id", eventID, "err", err)
			continue
		}
		st.DeriveMaskedEmail()
		students = append(students, st)
	}

	filtered := query.FilterStudents(students, q.Search)
	sorted := query.SortStudents(filtered, q.SortBy, q.Order)

	return &domain.EventRoster{
		EventID:        eventID,
		Students:       sorted,
		TotalEnrolled:  len(students),
		CompletionRate: completionRate(students),
	}, nil
}

// completionRate is the percentage of students with completed status,
// measured over the full validated roster, not the filtered view.
func completionRate(students []*domain.Student) float64 {
	if len(students) == 0 {
		return 0
	}
	completed := 0
	for _, st := range students {
		if st.CompletionStatus == domain.CompletionCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(students)) * 100
}

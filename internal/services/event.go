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

type eventService struct {
	backend        domain.CourseBackend
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates an EventService over the course backend.
func NewEventService(backend domain.CourseBackend, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		backend:        backend,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ListEvents fetches the catalog snapshot, drops malformed records with a
// warning, derives risk levels, then filters and paginates in memory.
// Date bounds ride along to the backend; everything else is local.
func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	backendFilter := domain.BackendEventFilter{}
	if filter.DateFrom != nil {
		backendFilter.DateFrom = filter.DateFrom.Format(time.DateOnly)
	}
	if filter.DateTo != nil {
		backendFilter.DateTo = filter.DateTo.Format(time.DateOnly)
	}

	fetched, err := s.backend.ListEvents(ctx, backendFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	events := s.prepare(ctx, fetched)
	filtered := query.FilterEvents(events, filter)
	return query.Paginate(filtered, page), len(filtered), nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.backend.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := event.Validate(); err != nil {
		s.logger.WarnContext(ctx, "malformed event record", "event_id", id, "err", err)
		return nil, domain.ErrNotFound
	}
	event.DeriveRisk()
	return event, nil
}

// prepare validates each record and derives risk. A single bad record is
// skipped, never allowed to blank the whole list.
func (s *eventService) prepare(ctx context.Context, fetched []*domain.Event) []*domain.Event {
	events := make([]*domain.Event, 0, len(fetched))
	for _, e := range fetched {
		if e == nil {
			continue
		}
		if err := e.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed event record", "err", err)
			continue
		}
		e.DeriveRisk()
		events = append(events, e)
	}
	return events
}

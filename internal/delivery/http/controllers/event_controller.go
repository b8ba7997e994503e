package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trainingdash/internal/delivery/http/helpers"
	"trainingdash/internal/domain"
)

// EventController serves the event catalog and roster views.
type EventController struct {
	Logger  *slog.Logger
	Events  domain.EventService
	Rosters domain.RosterService
}

func NewEventController(logger *slog.Logger, events domain.EventService, rosters domain.RosterService) *EventController {
	return &EventController{
		Logger:  logger,
		Events:  events,
		Rosters: rosters,
	}
}

// ListEventsResponse is the data payload for GET /events.
type ListEventsResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListEvents godoc
// @Summary List training events
// @Description Returns the filtered, paginated event catalog. Filters: free-text search over title/description/instructor, status set, risk-level set, instructor substring, minimum CEU credits, and date bounds. All dimensions combine with AND. Requires authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search"
// @Param status query string false "Comma-separated status set (upcoming,ongoing,completed,cancelled)"
// @Param riskLevel query string false "Comma-separated risk set (low,medium,high)"
// @Param instructor query string false "Instructor name substring"
// @Param minCeuCredits query int false "Minimum CEU credits"
// @Param dateFrom query string false "Start date lower bound (YYYY-MM-DD)"
// @Param dateTo query string false "Start date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page (1-indexed)"
// @Param pageSize query int false "Page size (default 9)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events and pagination meta"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: backend_unavailable"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := parseEventFilter(r)
	page := helpers.ParsePagination(r)

	events, total, err := c.Events.ListEvents(r.Context(), filter, page)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(page, total),
	})
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvent godoc
// @Summary Get a training event
// @Description Returns a single event with its derived risk level. Requires authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: backend_unavailable"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetEvent(r.Context(), eventID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetRosterSuccessResponse is the success response envelope for GET /events/{eventID}/roster (200).
type GetRosterSuccessResponse struct {
	Data  *domain.EventRoster `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetRoster godoc
// @Summary Get an event roster
// @Description Returns the student roster with search and stable sort applied. Masked emails are recomputed on every read. Requires authentication.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param search query string false "Free-text search over name, occupation, license state, clinic"
// @Param sortBy query string false "Sort key (lastName,licenseState,occupation,progress,completionStatus)"
// @Param order query string false "Sort order (asc,desc)"
// @Success 200 {object} controllers.GetRosterSuccessResponse "data contains the roster"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: backend_unavailable"
// @Router /events/{eventID}/roster [get]
func (c *EventController) GetRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	roster, err := c.Rosters.GetRoster(r.Context(), eventID, parseRosterQuery(r))
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, roster)
}

func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.Logger.ErrorContext(r.Context(), "backend unavailable", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBackendUnavailable, "course backend unavailable")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// parseEventFilter reads the recognized filter keys from the query string.
// Unrecognized keys are ignored.
func parseEventFilter(r *http.Request) domain.EventFilter {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Search:     q.Get("search"),
		Instructor: q.Get("instructor"),
	}
	for _, s := range splitCSV(q.Get("status")) {
		filter.Status = append(filter.Status, domain.EventStatus(s))
	}
	for _, s := range splitCSV(q.Get("riskLevel")) {
		filter.RiskLevels = append(filter.RiskLevels, domain.RiskLevel(s))
	}
	if s := q.Get("minCeuCredits"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			filter.MinCEUCredits = v
		}
	}
	if t, ok := parseDate(q.Get("dateFrom")); ok {
		filter.DateFrom = &t
	}
	if t, ok := parseDate(q.Get("dateTo")); ok {
		filter.DateTo = &t
	}
	return filter
}

func parseRosterQuery(r *http.Request) domain.RosterQuery {
	q := r.URL.Query()
	query := domain.RosterQuery{
		Search: q.Get("search"),
		SortBy: domain.SortByLastName,
		Order:  domain.OrderAsc,
	}
	switch domain.StudentSortKey(q.Get("sortBy")) {
	case domain.SortByLicenseState:
		query.SortBy = domain.SortByLicenseState
	case domain.SortByOccupation:
		query.SortBy = domain.SortByOccupation
	case domain.SortByProgress:
		query.SortBy = domain.SortByProgress
	case domain.SortByCompletionStatus:
		query.SortBy = domain.SortByCompletionStatus
	}
	if q.Get("order") == string(domain.OrderDesc) {
		query.Order = domain.OrderDesc
	}
	return query
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

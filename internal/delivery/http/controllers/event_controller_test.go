package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingdash/internal/delivery/http/helpers"
	"trainingdash/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events     []*domain.Event
	total      int
	listErr    error
	event      *domain.Event
	getErr     error
	lastFilter domain.EventFilter
	lastPage   domain.PaginationParams
}

func (f *fakeEventService) ListEvents(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastFilter = filter
	f.lastPage = page
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.events, f.total, nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.event, nil
}

// fakeRosterService implements domain.RosterService for handler tests.
type fakeRosterService struct {
	roster    *domain.EventRoster
	err       error
	lastQuery domain.RosterQuery
}

func (f *fakeRosterService) GetRoster(ctx context.Context, eventID string, q domain.RosterQuery) (*domain.EventRoster, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestListEvents_OK(t *testing.T) {
	events := &fakeEventService{
		events: []*domain.Event{{ID: "1", Title: "Basic", RiskLevel: domain.RiskHigh}},
		total:  1,
	}
	c := NewEventController(testLogger, events, &fakeRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/events?search=basic&status=upcoming,ongoing&riskLevel=high&instructor=johnson&minCeuCredits=10&page=2&pageSize=9", nil)
	rec := httptest.NewRecorder()
	c.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Nil(t, envelope.Error)

	assert.Equal(t, "basic", events.lastFilter.Search)
	assert.Equal(t, []domain.EventStatus{domain.StatusUpcoming, domain.StatusOngoing}, events.lastFilter.Status)
	assert.Equal(t, []domain.RiskLevel{domain.RiskHigh}, events.lastFilter.RiskLevels)
	assert.Equal(t, "johnson", events.lastFilter.Instructor)
	assert.Equal(t, 10, events.lastFilter.MinCEUCredits)
	assert.Equal(t, 2, events.lastPage.Page)
	assert.Equal(t, 9, events.lastPage.PageSize)
}

func TestListEvents_DefaultsAndDateParsing(t *testing.T) {
	events := &fakeEventService{}
	c := NewEventController(testLogger, events, &fakeRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/events?dateFrom=2026-01-15&dateTo=not-a-date&minCeuCredits=bogus", nil)
	rec := httptest.NewRecorder()
	c.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, events.lastPage.Page)
	assert.Equal(t, helpers.DefaultPageSize, events.lastPage.PageSize)
	require.NotNil(t, events.lastFilter.DateFrom)
	assert.Equal(t, "2026-01-15", events.lastFilter.DateFrom.Format("2006-01-02"))
	assert.Nil(t, events.lastFilter.DateTo)
	assert.Zero(t, events.lastFilter.MinCEUCredits)
}

func TestListEvents_BackendUnavailable(t *testing.T) {
	events := &fakeEventService{listErr: domain.ErrBackendUnavailable}
	c := NewEventController(testLogger, events, &fakeRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	c.ListEvents(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBackendUnavailable, envelope.Error.Code)
}

func TestGetEvent_NotFound(t *testing.T) {
	events := &fakeEventService{getErr: domain.ErrNotFound}
	c := NewEventController(testLogger, events, &fakeRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("eventID", "missing")
	rec := httptest.NewRecorder()
	c.GetEvent(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
}

func TestGetRoster_OKAndQueryParsing(t *testing.T) {
	rosters := &fakeRosterService{roster: &domain.EventRoster{
		EventID:       "ev-1",
		Students:      []*domain.Student{{ID: "1", MaskedEmail: "jo***@example.com"}},
		TotalEnrolled: 1,
	}}
	c := NewEventController(testLogger, &fakeEventService{}, rosters)

	req := httptest.NewRequest(http.MethodGet, "/events/ev-1/roster?search=smith&sortBy=progress&order=desc", nil)
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	c.GetRoster(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "smith", rosters.lastQuery.Search)
	assert.Equal(t, domain.SortByProgress, rosters.lastQuery.SortBy)
	assert.Equal(t, domain.OrderDesc, rosters.lastQuery.Order)
}

func TestGetRoster_SortDefaults(t *testing.T) {
	rosters := &fakeRosterService{roster: &domain.EventRoster{EventID: "ev-1"}}
	c := NewEventController(testLogger, &fakeEventService{}, rosters)

	req := httptest.NewRequest(http.MethodGet, "/events/ev-1/roster?sortBy=bogus", nil)
	req.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	c.GetRoster(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SortByLastName, rosters.lastQuery.SortBy)
	assert.Equal(t, domain.OrderAsc, rosters.lastQuery.Order)
}

func TestGetRoster_MissingEventID(t *testing.T) {
	c := NewEventController(testLogger, &fakeEventService{}, &fakeRosterService{})

	req := httptest.NewRequest(http.MethodGet, "/events//roster", nil)
	rec := httptest.NewRecorder()
	c.GetRoster(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

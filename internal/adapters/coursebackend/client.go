// Package coursebackend implements domain.CourseBackend against the external
// course-management REST API.
package coursebackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"trainingdash/internal/domain"
)

// Config holds the backend connection settings.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

type client struct {
	http *http.Client
	cfg  Config
}

// NewClient returns a CourseBackend that calls the course-management API with
// Basic authentication. Every transport, status, and parse failure is wrapped
// into domain.ErrBackendUnavailable; a 404 maps to domain.ErrNotFound.
func NewClient(httpClient *http.Client, cfg Config) domain.CourseBackend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{http: httpClient, cfg: cfg}
}

func (c *client) ListEvents(ctx context.Context, filter domain.BackendEventFilter) ([]*domain.Event, error) {
	params := url.Values{}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.Status != "" {
		params.Set("status", filter.Status)
	}
	if filter.Instructor != "" {
		params.Set("instructor", filter.Instructor)
	}
	if filter.DateFrom != "" {
		params.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		params.Set("date_to", filter.DateTo)
	}

	var events []*domain.Event
	if err := c.get(ctx, "/events", params, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *client) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *client) GetRoster(ctx context.Context, eventID string) (*domain.EventRoster, error) {
	var roster domain.EventRoster
	if err := c.get(ctx, "/events/"+url.PathEscape(eventID)+"/roster", nil, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

func (c *client) ListStudents(ctx context.Context, filter domain.BackendStudentFilter) ([]*domain.Student, error) {
	params := url.Values{}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}
	if filter.EventID != "" {
		params.Set("event_id", filter.EventID)
	}

	var students []*domain.Student
	if err := c.get(ctx, "/students", params, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// get issues one authenticated GET and decodes the JSON body into dest.
// No retries, no caching.
func (c *client) get(ctx context.Context, path string, params url.Values, dest any) error {
	u := c.cfg.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrBackendUnavailable, err)
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: backend returned status %d", domain.ErrBackendUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

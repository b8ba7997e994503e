package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"trainingdash/internal/domain"
	"trainingdash/internal/query"
)

// rosterColumns is the fixed roster export column order.
var rosterColumns = []string{
	"Student ID",
	"First Name",
	"Last Name",
	"Masked Email",
	"License Type",
	"License Number",
	"License State",
	"License Expiration",
	"Occupation",
	"Instruments",
	"Clinic Name",
	"Clinic Address",
	"Clinic Phone",
	"Course Progress (%)",
	"Completed Lessons",
	"Total Lessons",
	"Last Access",
	"Certificate Earned",
	"Enrollment Date",
	"Completion Status",
	"Certifications",
}

// eventColumns is the fixed events-overview export column order.
var eventColumns = []string{
	"Event ID",
	"Title",
	"Instructor",
	"Location",
	"Start Date",
	"End Date",
	"Status",
	"Risk Level",
	"CEU Credits",
	"Enrolled",
	"Capacity",
	"Tags",
}

type exportService struct {
	backend        domain.CourseBackend
	events         domain.EventService
	roster         domain.RosterService
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewExportService creates an ExportService. The mailer may be a noop in
// environments without email delivery.
func NewExportService(backend domain.CourseBackend, events domain.EventService, roster domain.RosterService, mailer domain.Mailer, logger *slog.Logger, timeout time.Duration) domain.ExportService {
	return &exportService{
		backend:        backend,
		events:         events,
		roster:         roster,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *exportService) ExportRoster(ctx context.Context, eventID string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, "", err
	}
	roster, err := s.roster.GetRoster(ctx, eventID, domain.RosterQuery{SortBy: domain.SortByLastName, Order: domain.OrderAsc})
	if err != nil {
		return nil, "", err
	}

	data, err := marshalRosterCSV(roster.Students)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	filename := SanitizeFilename(event.Title) + "_roster.csv"
	return data, filename, nil
}

func (s *exportService) ExportEvents(ctx context.Context, filter domain.EventFilter) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fetched, err := s.backend.ListEvents(ctx, domain.BackendEventFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("list events for export: %w", err)
	}
	events := make([]*domain.Event, 0, len(fetched))
	for _, e := range fetched {
		if e == nil {
			continue
		}
		if err := e.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping malformed event record in export", "err", err)
			continue
		}
		e.DeriveRisk()
		events = append(events, e)
	}
	events = query.FilterEvents(events, filter)

	data, err := marshalEventsCSV(events)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	filename := fmt.Sprintf("events-overview-%s.csv", time.Now().UTC().Format(time.DateOnly))
	return data, filename, nil
}

func (s *exportService) EmailRoster(ctx context.Context, eventID, recipient string) error {
	data, filename, err := s.ExportRoster(ctx, eventID)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Roster export: %s", strings.TrimSuffix(filename, ".csv"))
	body := fmt.Sprintf("Attached is the roster export %s generated on %s.",
		filename, time.Now().UTC().Format(time.DateOnly))
	if err := s.mailer.Send(recipient, subject, body, domain.Attachment{
		Filename:    filename,
		ContentType: "text/csv",
		Data:        data,
	}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return nil
}

// SanitizeFilename replaces every non-alphanumeric rune with an underscore.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)
}

func marshalRosterCSV(students []*domain.Student) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rosterColumns); err != nil {
		return nil, err
	}
	for _, st := range students {
		row := []string{
			st.ID,
			st.FirstName,
			st.LastName,
			st.MaskedEmail,
			st.License.Type,
			st.License.Number,
			st.License.State,
			formatDate(st.License.ExpirationDate),
			st.Occupation,
			strings.Join(st.Instruments, ", "),
			st.Clinic.Name,
			st.Clinic.Address,
			st.Clinic.Phone,
			strconv.Itoa(st.Progress.ProgressPercentage),
			strconv.Itoa(st.Progress.CompletedLessons),
			strconv.Itoa(st.Progress.TotalLessons),
			formatDate(st.Progress.LastAccessDate),
			yesNo(st.Progress.CertificateEarned),
			formatDate(st.EnrollmentDate),
			string(st.CompletionStatus),
			joinCertifications(st.Certifications),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalEventsCSV(events []*domain.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(eventColumns); err != nil {
		return nil, err
	}
	for _, e := range events {
		row := []string{
			e.ID,
			e.Title,
			e.Instructor,
			e.Location,
			formatDate(e.StartDate),
			formatDate(e.EndDate),
			string(e.Status),
			string(e.RiskLevel),
			strconv.Itoa(e.CEUCredits),
			strconv.Itoa(e.CurrentEnrollment),
			strconv.Itoa(e.MaxCapacity),
			strings.Join(e.Tags, ", "),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// joinCertifications renders composite entries as "{type} ({number})" joined by "; ".
func joinCertifications(certs []domain.Certification) string {
	parts := make([]string, len(certs))
	for i, c := range certs {
		parts[i] = fmt.Sprintf("%s (%s)", c.Type, c.Number)
	}
	return strings.Join(parts, "; ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

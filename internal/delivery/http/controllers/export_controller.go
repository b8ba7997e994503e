package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"trainingdash/internal/delivery/http/helpers"
	"trainingdash/internal/domain"
)

// ExportController serves CSV exports as downloads and email deliveries.
type ExportController struct {
	Logger      *slog.Logger
	Exports     domain.ExportService
	StaffDomain string
}

func NewExportController(logger *slog.Logger, exports domain.ExportService, staffDomain string) *ExportController {
	return &ExportController{
		Logger:      logger,
		Exports:     exports,
		StaffDomain: strings.TrimPrefix(strings.ToLower(staffDomain), "@"),
	}
}

// ExportRoster godoc
// @Summary Export an event roster as CSV
// @Description Streams the roster CSV with a Content-Disposition attachment filename of the form {sanitizedTitle}_roster.csv. Requires authentication.
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {string} string "CSV body"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 502 {object} helpers.APIResponse "error.code: backend_unavailable"
// @Router /events/{eventID}/export [get]
func (c *ExportController) ExportRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	data, filename, err := c.Exports.ExportRoster(r.Context(), eventID)
	if err != nil {
		c.writeExportError(w, r, err)
		return
	}
	writeCSV(w, filename, data)
}

// ExportEvents godoc
// @Summary Export the event catalog as CSV
// @Description Streams the events-overview CSV; the same filter keys as GET /events apply. Filename is events-overview-{date}.csv. Requires authentication.
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV body"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: backend_unavailable"
// @Router /events/export [get]
func (c *ExportController) ExportEvents(w http.ResponseWriter, r *http.Request) {
	data, filename, err := c.Exports.ExportEvents(r.Context(), parseEventFilter(r))
	if err != nil {
		c.writeExportError(w, r, err)
		return
	}
	writeCSV(w, filename, data)
}

// EmailRosterRequest is the request body for POST /events/{eventID}/export/email.
type EmailRosterRequest struct {
	Recipient string `json:"recipient"`
}

// Validate implements Validator.
func (e EmailRosterRequest) Validate() []string {
	var errs []string
	if e.Recipient == "" {
		errs = append(errs, "recipient is required")
	} else if !strings.Contains(e.Recipient, "@") {
		errs = append(errs, "recipient must be an email address")
	}
	return errs
}

// EmailRosterResponse is the data payload for POST /events/{eventID}/export/email (200).
type EmailRosterResponse struct {
	Status string `json:"status"`
}

// EmailRosterSuccessResponse is the success response envelope for POST /events/{eventID}/export/email (200).
type EmailRosterSuccessResponse struct {
	Data  EmailRosterResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EmailRoster godoc
// @Summary Email an event roster export
// @Description Sends the roster CSV to a staff recipient as an email attachment. The recipient must belong to the staff email domain. Requires authentication.
// @Tags exports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body EmailRosterRequest true "Recipient"
// @Success 200 {object} controllers.EmailRosterSuccessResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: access_denied"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: export_failed"
// @Router /events/{eventID}/export/email [post]
func (c *ExportController) EmailRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EmailRosterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !strings.HasSuffix(strings.ToLower(req.Recipient), "@"+c.StaffDomain) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeAccessDenied, "recipient is outside the staff domain")
		return
	}
	if err := c.Exports.EmailRoster(r.Context(), eventID, req.Recipient); err != nil {
		c.writeExportError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EmailRosterResponse{Status: "sent"})
}

func (c *ExportController) writeExportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrBackendUnavailable):
		c.Logger.ErrorContext(r.Context(), "backend unavailable", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBackendUnavailable, "course backend unavailable")
	case errors.Is(err, domain.ErrExportFailure):
		c.Logger.ErrorContext(r.Context(), "export failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeExportFailed, "export failed")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package domain

import "errors"

// Sentinel errors shared across services and controllers.
var (
	// ErrUnauthorized means no valid session was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAccessDenied means the caller authenticated with an email outside the staff domain.
	ErrAccessDenied = errors.New("access denied")
	// ErrNotFound means the requested record does not exist upstream.
	ErrNotFound = errors.New("not found")
	// ErrBackendUnavailable covers transport failures, non-2xx responses, and
	// unparsable payloads from the course-management backend.
	ErrBackendUnavailable = errors.New("course backend unavailable")
	// ErrMalformedRecord marks a record that failed structural validation.
	// Callers skip such records and continue; it is never surfaced as a request failure.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrExportFailure means CSV generation or delivery failed.
	ErrExportFailure = errors.New("export failed")
)

package domain

import "context"

// ExportService produces CSV exports of rosters and the event catalog.
type ExportService interface {
	// ExportRoster returns the roster CSV for an event and the download filename.
	ExportRoster(ctx context.Context, eventID string) (csv []byte, filename string, err error)
	// ExportEvents returns the events-overview CSV and the download filename.
	ExportEvents(ctx context.Context, filter EventFilter) (csv []byte, filename string, err error)
	// EmailRoster sends the roster CSV to a staff recipient as an attachment.
	EmailRoster(ctx context.Context, eventID, recipient string) error
}

package reports

import "errors"

var (
	// ErrNoData is returned before any layout work when the filtered record
	// set is empty; no document is produced.
	ErrNoData = errors.New("no data to export")

	// ErrExportBusy is returned when another export is already running.
	ErrExportBusy = errors.New("an export is already in progress")
)

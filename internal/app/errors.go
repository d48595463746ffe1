package service

import "errors"

// ErrSheetNotConfigured is returned when no roster spreadsheet id is set.
var ErrSheetNotConfigured = errors.New("GOLF_SHEET_ID not set")

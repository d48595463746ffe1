package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrMissingCredentials = errors.New("roster credentials missing")
	ErrInvalidCredentials = errors.New("roster credentials invalid")
	ErrSheetAccess        = errors.New("roster sheet unreachable")
	ErrUnexpectedLayout   = errors.New("roster sheet layout unexpected")
)

// Kind returns a short label for err suitable for metrics.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMissingCredentials):
		return "missing_credentials"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrSheetAccess):
		return "sheet_access"
	case errors.Is(err, ErrUnexpectedLayout):
		return "layout"
	default:
		return "unknown"
	}
}

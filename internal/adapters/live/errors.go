package live

import (
	"context"
	"errors"
	"net"
)

// Failure kinds of a live feed fetch. They never leave the package: the
// client degrades to an empty snapshot and records the reason.
var (
	ErrFeedRequest = errors.New("live feed request failed")
	ErrFeedStatus  = errors.New("live feed returned non-2xx status")
	ErrFeedDecode  = errors.New("live feed payload malformed")
)

func reason(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, ErrFeedStatus):
		return "status"
	case errors.Is(err, ErrFeedDecode):
		return "decode"
	case errors.Is(err, ErrFeedRequest):
		return "request"
	default:
		return "unknown"
	}
}

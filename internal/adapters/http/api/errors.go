package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrStandings        = errors.New("standings unavailable")
)

// opError ties a failure to the handler operation that hit it.
type opError struct {
	op   string
	kind error
	err  error
}

func (e *opError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %v", e.op, e.kind)
	}
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *opError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

// NewKind reports a failure of op that is fully described by kind.
func NewKind(op string, kind error) error {
	return &opError{op: op, kind: kind}
}

// Wrap attributes err to op under kind.
func Wrap(op string, kind, err error) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, kind: kind, err: err}
}

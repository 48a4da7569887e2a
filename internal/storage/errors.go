package storage

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrPersistence     = errors.New("persistence failure")
)

// MalformedRecordError reports a stored record that does not match the
// expected field count or field shape.
type MalformedRecordError struct {
	Source string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Source == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedRecord, e.Reason)
	}
	return fmt.Sprintf("%s in %s line %d: %s", ErrMalformedRecord, e.Source, e.Line, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// PersistenceError reports a read or write that did not complete. The
// operation that triggered it must not report success.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

func malformedf(format string, args ...any) *MalformedRecordError {
	return &MalformedRecordError{Reason: fmt.Sprintf(format, args...)}
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// located fills in where a malformed record came from.
func located(err error, source string, line int) error {
	var mre *MalformedRecordError
	if errors.As(err, &mre) {
		return &MalformedRecordError{Source: source, Line: line, Reason: mre.Reason}
	}
	return err
}

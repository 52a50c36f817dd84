package mtr

import (
	"errors"
	"fmt"
)

// ErrorCode represents a high-level category of study-engine error.
type ErrorCode string

const (
	ErrCodeMissingLabels         ErrorCode = "missing labels"
	ErrCodeEmptyGroup            ErrorCode = "empty group"
	ErrCodeMissingTransposeLabel ErrorCode = "missing transpose label"
	ErrCodeWrongRowCount         ErrorCode = "wrong row count"
	ErrCodeInsufficientSeries    ErrorCode = "insufficient series"
	ErrCodeInvalidQuery          ErrorCode = "invalid query"
)

// StudyError is a structured engine error carrying the stage that
// failed, a high-level code, and a human-readable context string
// naming the offending tag list.
type StudyError struct {
	Op   string    // stage that failed, e.g. "filter", "group", "transpose"
	Code ErrorCode // high-level error category
	Msg  string    // human-readable context, usually naming the offending tag list

	Inner error // wrapped cause, if any
}

func (e *StudyError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("mtr: %s: %s (%s)", e.Op, e.Msg, e.Code)
	}
	return fmt.Sprintf("mtr: %s (%s)", e.Msg, e.Code)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *StudyError) Unwrap() error {
	return e.Inner
}

// Is lets errors.Is compare two *StudyError values by Code.
func (e *StudyError) Is(target error) bool {
	if target == nil {
		return false
	}
	var te *StudyError
	if errors.As(target, &te) {
		return e.Code == te.Code
	}
	return false
}

func newError(op string, code ErrorCode, msg string) *StudyError {
	return &StudyError{Op: op, Code: code, Msg: msg}
}

func wrapError(op string, code ErrorCode, inner error) *StudyError {
	if inner == nil {
		return nil
	}
	return &StudyError{Op: op, Code: code, Msg: inner.Error(), Inner: inner}
}

// IsErrorCode reports whether err is a *StudyError carrying code.
func IsErrorCode(err error, code ErrorCode) bool {
	var se *StudyError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

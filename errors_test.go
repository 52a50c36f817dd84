package mtr

import (
	"errors"
	"strings"
	"testing"
)

func TestStudyErrorMessageIncludesOpAndCode(t *testing.T) {
	err := newError("group", ErrCodeEmptyGroup, "label 'Alloc-Vector' didn't produce a group")
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected a non-empty error message")
	}
	if !strings.HasPrefix(msg, "mtr: group: ") || !strings.Contains(msg, "("+string(ErrCodeEmptyGroup)+")") {
		t.Fatalf("expected message to include op %q and code %q, got %q", "group", ErrCodeEmptyGroup, msg)
	}
	if !IsErrorCode(err, ErrCodeEmptyGroup) {
		t.Fatal("expected IsErrorCode to match ErrCodeEmptyGroup")
	}
}

func TestIsErrorCodeFalseForOtherCodes(t *testing.T) {
	err := newError("filter", ErrCodeMissingLabels, "parameter 'tags' is empty")
	if IsErrorCode(err, ErrCodeEmptyGroup) {
		t.Fatal("expected IsErrorCode to return false for a mismatched code")
	}
}

func TestIsErrorCodeFalseForNonStudyError(t *testing.T) {
	if IsErrorCode(errors.New("plain error"), ErrCodeInvalidQuery) {
		t.Fatal("expected IsErrorCode to return false for a non-StudyError")
	}
}

func TestStudyErrorUnwrap(t *testing.T) {
	inner := errors.New("underlying cause")
	wrapped := wrapError("run", ErrCodeInvalidQuery, inner)

	if !errors.Is(wrapped, inner) {
		t.Fatal("expected errors.Is to find the wrapped inner error")
	}
}

func TestWrapErrorNilInnerReturnsNil(t *testing.T) {
	if wrapError("run", ErrCodeInvalidQuery, nil) != nil {
		t.Fatal("expected wrapError(nil) to return nil")
	}
}

func TestStudyErrorIsComparesByCode(t *testing.T) {
	a := newError("group", ErrCodeEmptyGroup, "first")
	b := newError("transpose", ErrCodeEmptyGroup, "second")
	c := newError("group", ErrCodeMissingLabels, "third")

	if !errors.Is(a, b) {
		t.Fatal("expected two StudyErrors with the same code to match via errors.Is")
	}
	if errors.Is(a, c) {
		t.Fatal("expected StudyErrors with different codes not to match")
	}
}

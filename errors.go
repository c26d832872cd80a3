package fleet

import (
	"errors"
	"fmt"
)

// Errors returned by the fleet package. They can be checked with errors.Is.
var (
	// ErrCatalogNotFound is returned when the catalog file does not exist.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrSnapshotMissing is returned when there is no snapshot from a previous session.
	ErrSnapshotMissing = errors.New("no snapshot")

	// ErrSnapshotCorrupt is returned when a snapshot exists but cannot be decoded.
	ErrSnapshotCorrupt = errors.New("snapshot cannot be decoded")

	// ErrBoatNotFound is returned when no boat matches the requested name.
	ErrBoatNotFound = errors.New("boat not found")

	// ErrExpenseRefused is returned when an expense exceeds the remaining amount.
	ErrExpenseRefused = errors.New("expense refused")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("parse error")
)

// ParseError reports a malformed value in a catalog line or operator input.
type ParseError struct {
	Line  int    // 1-based line number, 0 if not applicable.
	Field string // name of the faulty field.
	Value string // raw value.
	Err   error  // underlying cause, if any.
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ExpenseRefusedError is returned when an expense would make a boat's
// expenses exceed its price paid. Remaining is what could still be spent.
type ExpenseRefusedError struct {
	Name      string
	Amount    Money
	Remaining Money
}

func (e *ExpenseRefusedError) Error() string {
	return fmt.Sprintf("expense of %s refused for %q, only %s left to spend", e.Amount.Fixed(2), e.Name, e.Remaining.Fixed(2))
}

func (e *ExpenseRefusedError) Is(target error) bool { return target == ErrExpenseRefused }

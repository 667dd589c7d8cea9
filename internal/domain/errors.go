package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence error")
	ErrBlocked     = errors.New("event is inactive")
)

type ValidationReason string

const (
	ReasonEmptyName      ValidationReason = "empty_name"
	ReasonEmptyGroup     ValidationReason = "empty_group"
	ReasonNegativeCount  ValidationReason = "negative_count"
	ReasonTooFew         ValidationReason = "too_few"
	ReasonTooMany        ValidationReason = "too_many"
	ReasonCountMismatch  ValidationReason = "count_mismatch"
	ReasonDuplicateName  ValidationReason = "duplicate_name"
	ReasonNotAssignable  ValidationReason = "not_assignable"
	ReasonUnknownTable   ValidationReason = "unknown_table"
	ReasonUnknownGroup   ValidationReason = "unknown_group"
	ReasonNotEditing     ValidationReason = "not_editing"
	ReasonLayoutWarnings ValidationReason = "layout_warnings"
	ReasonBusy           ValidationReason = "busy"
)

// ValidationError is a recoverable, user-facing rejection. No state changes when it is returned.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func NewValidationError(reason ValidationReason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError wraps a storage failure. The in-memory state is left as it was before the attempt.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

type BlockedError struct {
	EventID string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("el evento %s está inactivo: no se pueden realizar cambios", e.EventID)
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}

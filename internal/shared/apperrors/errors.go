package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError rejects malformed input before any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports slots that failed the authoritative commit-time
// availability check. The caller must re-quote.
type ConflictError struct {
	Slots []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slots no longer available: %s", strings.Join(e.Slots, ", "))
}

func NewConflictError(slots []string) *ConflictError {
	return &ConflictError{Slots: slots}
}

// NotFoundError reports a missing booking, court or promo code.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidTransitionError reports a lifecycle transition not permitted from
// the booking's current state.
type InvalidTransitionError struct {
	From   string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in state %s", e.Action, e.From)
}

func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

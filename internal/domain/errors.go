package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Quiz and player specific errors
	ErrDataLoad         ErrorCode = "DATA_LOAD_FAILURE"
	ErrInvalidSelection ErrorCode = "INVALID_SELECTION"
	ErrPlayback         ErrorCode = "PLAYBACK_FAILURE"
	ErrCategoryNotFound ErrorCode = "CATEGORY_NOT_FOUND"
	ErrSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewDataLoadError wraps a transport or parse failure while fetching one of
// the static documents. Fatal only for the feature backed by that document.
func NewDataLoadError(document string, err error) *DomainError {
	return NewError(ErrDataLoad, fmt.Sprintf("Failed to load %s", document), err)
}

// NewInvalidSelectionError reports a user action attempted without its
// preconditions (no category chosen, no session loaded, answer repeated).
func NewInvalidSelectionError(message string) *DomainError {
	return NewError(ErrInvalidSelection, message, nil)
}

func NewPlaybackError(message string, err error) *DomainError {
	return NewError(ErrPlayback, message, err)
}

func NewCategoryNotFoundError(categoryID int) *DomainError {
	return NewError(ErrCategoryNotFound, fmt.Sprintf("Category not found with ID: %d", categoryID), nil)
}

func NewSessionNotFoundError(sessionID int) *DomainError {
	return NewError(ErrSessionNotFound, fmt.Sprintf("Listening session not found with ID: %d", sessionID), nil)
}

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

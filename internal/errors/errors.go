// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrNotHydrated        = errors.New("store not hydrated")
	ErrTradeNotFound      = errors.New("trade not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrSinkUnavailable    = errors.New("sync sink unavailable")
	ErrConfigInvalid      = errors.New("invalid configuration")
	ErrCatalogEmpty       = errors.New("confluence catalog is empty")
)

// StorageError represents a failure of the local document store. These are
// recoverable: the in-memory trade list stays authoritative for the session.
type StorageError struct {
	Op  string // "load", "save", "open"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

// SyncError represents a failed remote mirror attempt. Sync errors are
// logged for diagnostics and never retried.
type SyncError struct {
	TradeID string
	Status  int // HTTP status, 0 for transport errors
	Err     error
}

func (e *SyncError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("sync trade %s: status %d: %v", e.TradeID, e.Status, e.Err)
	}
	return fmt.Sprintf("sync trade %s: %v", e.TradeID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError.
func NewSyncError(tradeID string, status int, err error) *SyncError {
	return &SyncError{TradeID: tradeID, Status: status, Err: err}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

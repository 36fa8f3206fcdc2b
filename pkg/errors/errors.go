package errors

import (
	"fmt"
)

// ParseError represents a config or layout decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration, theme, or layout validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError records one failed step of the layout load fallback chain.
type LoadError struct {
	Scope string
	Step  string
	Err   error
}

// NewLoadError constructs a LoadError.
func NewLoadError(scope, step string, err error) error {
	return &LoadError{Scope: scope, Step: step, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	if e.Step != "" {
		return fmt.Sprintf("load error [%s] at %s: %v", e.Scope, e.Step, e.Err)
	}
	return fmt.Sprintf("load error [%s]: %v", e.Scope, e.Err)
}

// Unwrap exposes the root error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SaveError indicates a layout could not be written back to its scope.
type SaveError struct {
	Scope string
	Err   error
}

// NewSaveError constructs a SaveError for the given scope.
func NewSaveError(scope string, err error) error {
	return &SaveError{Scope: scope, Err: err}
}

func (e *SaveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Scope != "" {
		return fmt.Sprintf("save error [%s]: %v", e.Scope, e.Err)
	}
	return fmt.Sprintf("save error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *SaveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// APIError describes a non-successful response from the storefront API.
type APIError struct {
	Operation string
	Status    int
	Message   string
}

// NewAPIError constructs an APIError.
func NewAPIError(operation string, status int, message string) error {
	return &APIError{Operation: operation, Status: status, Message: message}
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("api error [%s]: status %d: %s", e.Operation, e.Status, e.Message)
	}
	return fmt.Sprintf("api error [%s]: status %d", e.Operation, e.Status)
}

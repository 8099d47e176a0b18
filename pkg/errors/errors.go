// Package errors defines the error types shared by the remarkup library
// and CLI. Sentinel values support errors.Is checks across package
// boundaries, and the structured types carry enough context to tell a
// caller which document, file, or alignment stage failed.
package errors

import (
	"errors"
	"fmt"
)

// New is re-exported from the standard library so callers of this package
// rarely need both imports.
var New = errors.New

// Sentinels the structured types below map onto via errors.Is.
var (
	// ErrNotFound marks lookups of nodes or resources that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks rejected caller input, options included.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCanceled marks work abandoned because the context ended.
	ErrCanceled = errors.New("operation canceled")

	// ErrEmptyTree marks documents with no elements to work with.
	ErrEmptyTree = errors.New("empty tree")

	// ErrNotImplemented marks features that are recognized but not built.
	ErrNotImplemented = errors.New("not implemented")
)

// IsNotFound reports whether err is, or wraps, a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is, or wraps, rejected input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled reports whether err is, or wraps, a cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// ValidationError reports input that failed validation. Field names the
// offending option or parameter when one can be singled out.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a ValidationError for the given field and value.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError reports malformed markup or data. Format names the syntax,
// such as "html" or "yaml", and File is set when the input came from disk.
type ParseError struct {
	Format  string
	File    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parsing %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("parsing %s: %s", e.Format, e.Message)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError.
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// AlignmentError reports a failure while reconciling two trees. Stage
// names the phase that failed: "metric", "matrix", "assignment", or
// "transfer".
type AlignmentError struct {
	Stage   string
	Message string
	Err     error
}

func (e *AlignmentError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("alignment error during %s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("alignment error: %s", e.Message)
}

// Unwrap returns the underlying cause.
func (e *AlignmentError) Unwrap() error {
	return e.Err
}

// NewAlignmentError creates an AlignmentError for the given stage.
func NewAlignmentError(stage, message string, err error) *AlignmentError {
	return &AlignmentError{Stage: stage, Message: message, Err: err}
}

// NotFoundError reports a missing node or resource by kind and identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IOError reports a failed file operation. Operation is the verb that
// failed: "read", "write", "create", "open", or "close".
type IOError struct {
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying OS error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates an IOError, taking its message from err when present.
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// ConfigError reports an invalid or unloadable configuration, with
// Component naming the part of the configuration at fault.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("config %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// The Wrap helpers attach structured context to an underlying error and
// pass nil through unchanged, so call sites can wrap unconditionally.

// WrapValidation wraps err as a ValidationError on the given field.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return NewValidationError(field, nil, err.Error())
}

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps err as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapConfig wraps err as a ConfigError.
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}

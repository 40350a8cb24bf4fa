// Package errors provides standardized error handling for lugisami.
// It defines the error kinds raised by the form, the configuration layer and
// the collaborator adapters, plus helpers for creating and wrapping them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrFieldNotFound     = NewFieldError("field not registered", "", FieldNotFound, nil)
	ErrReadOnlyField     = NewFieldError("field is read-only", "", ReadOnlyField, nil)
	ErrInvalidConfig     = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrNoWorkflow        = &ApplicationError{msg: "no workflow selected", kind: InvalidSelection}
	ErrUnsupportedFormat = NewCollaboratorError("unsupported source format", "", "", UnsupportedFormat, nil)
	ErrHelpUnavailable   = &ApplicationError{msg: "help document unavailable", kind: HelpUnavailable}
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Field error kinds
	FieldNotFound
	ReadOnlyField
	InvalidFieldKind
	// Config error kinds
	InvalidConfig
	// Dispatch error kinds
	InvalidSelection
	CollaboratorFailed
	UnsupportedFormat
	// Auxiliary
	HelpUnavailable
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FieldError represents errors related to form fields
type FieldError struct {
	ApplicationError
	field string
}

// NewFieldError creates a new field error
func NewFieldError(msg string, field string, kind ErrorKind, err error) *FieldError {
	return &FieldError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		field: field,
	}
}

// Error returns the field error message
func (e *FieldError) Error() string {
	if e.field != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.field, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.field)
	}
	return e.ApplicationError.Error()
}

// Field returns the field name associated with the error
func (e *FieldError) Field() string {
	return e.field
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// CollaboratorError represents a failure of an external domain tool
type CollaboratorError struct {
	ApplicationError
	workflow string
	command  string
}

// NewCollaboratorError creates a new collaborator error
func NewCollaboratorError(msg, workflow, command string, kind ErrorKind, err error) *CollaboratorError {
	return &CollaboratorError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		workflow: workflow,
		command:  command,
	}
}

// Error returns the collaborator error message
func (e *CollaboratorError) Error() string {
	if e.workflow != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.workflow, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.workflow)
	}
	return e.ApplicationError.Error()
}

// Workflow returns the workflow the collaborator was serving
func (e *CollaboratorError) Workflow() string {
	return e.workflow
}

// Command returns the external command that failed, if any
func (e *CollaboratorError) Command() string {
	return e.command
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the first kind other than Unknown found in err's chain.
// Wrap and Wrapf add Unknown layers, so the walk looks past them.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsFieldNotFound checks if the error is an unknown field error
func IsFieldNotFound(err error) bool {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Kind() == FieldNotFound
	}
	return false
}

// IsReadOnlyField checks if the error is a rejected direct edit of a path field
func IsReadOnlyField(err error) bool {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Kind() == ReadOnlyField
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsUnsupportedFormat checks if a collaborator rejected the source document format
func IsUnsupportedFormat(err error) bool {
	var collabErr *CollaboratorError
	if errors.As(err, &collabErr) {
		return collabErr.Kind() == UnsupportedFormat
	}
	return false
}

// IsCollaboratorFailed checks if an external tool failed while running
func IsCollaboratorFailed(err error) bool {
	var collabErr *CollaboratorError
	if errors.As(err, &collabErr) {
		return collabErr.Kind() == CollaboratorFailed
	}
	return false
}

package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a malformed schema reference.
	ErrReference = errors.New("reference error")

	// ErrEmptyResult indicates a projection retained no paths and no schemas.
	ErrEmptyResult = errors.New("empty subset result")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to parse or interpret a document.
// This includes YAML/JSON deserialization errors and structural issues such
// as a non-mapping document root.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a structurally malformed $ref: a reference
// marker whose value is not a scalar string. Missing reference targets are
// not errors; they surface as dangling-reference warnings instead.
type ReferenceError struct {
	// NodePath locates the offending $ref within the document,
	// e.g. "Pet.properties.owner.$ref"
	NodePath string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.NodePath != "" {
		msg += " at " + e.NodePath
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// EmptyResultError indicates a projection whose paths section and schema
// section both came out empty. This almost always means misconfigured root
// names or path keys rather than a genuinely empty API.
type EmptyResultError struct {
	// Roots are the root schema names the caller supplied
	Roots []string
	// Paths is the path allow-list the caller supplied
	Paths []string
}

// Error returns a human-readable error message.
func (e *EmptyResultError) Error() string {
	msg := "empty subset result: no paths and no schemas retained"
	if len(e.Roots) > 0 {
		msg += fmt.Sprintf(" (roots: %s)", strings.Join(e.Roots, ", "))
	}
	if len(e.Paths) > 0 {
		msg += fmt.Sprintf(" (paths: %s)", strings.Join(e.Paths, ", "))
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *EmptyResultError) Is(target error) bool {
	return target == ErrEmptyResult
}

// ConfigError represents invalid configuration or input options.
type ConfigError struct {
	// Option is the name of the offending option, if known
	Option string
	// Message describes what is invalid
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " in " + e.Option
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

package errors

import (
	"fmt"
)

// ParseError represents a decode failure of a theme document or snapshot fixture.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Source == "":
		return e.Message
	case e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError reports a failure confined to a single theme of a collection.
// Index is 1-based, matching the position an author sees in the document.
type ThemeError struct {
	Index   int
	Message string
	Err     error
}

// NewThemeError constructs a ThemeError for the theme at the given 1-based index.
func NewThemeError(index int, message string, err error) error {
	return &ThemeError{Index: index, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("Theme #%d: %s", e.Index, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures snapshot fixture validation issues.
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

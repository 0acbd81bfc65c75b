// Package errors defines the coded error type returned across inkwell.
//
// Every failure a caller may want to branch on carries an ErrorCode. Tests
// and callers compare codes, never message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrRender       ErrorCode = "RENDER"

	// Markup
	ErrMarkupUnmatchedClose  ErrorCode = "MARKUP_UNMATCHED_CLOSE"
	ErrMarkupUnclosedTag     ErrorCode = "MARKUP_UNCLOSED_TAG"
	ErrMarkupUnterminatedTag ErrorCode = "MARKUP_UNTERMINATED_TAG"
	ErrMarkupMismatchedClose ErrorCode = "MARKUP_MISMATCHED_CLOSE"
	ErrXMLParse              ErrorCode = "XML_PARSE"

	// Styles and colors
	ErrStyleSyntax       ErrorCode = "STYLE_SYNTAX"
	ErrStyleUnknownToken ErrorCode = "STYLE_UNKNOWN_TOKEN"
	ErrStyleDuplicate    ErrorCode = "STYLE_DUPLICATE"
	ErrColorParse        ErrorCode = "COLOR_PARSE"

	// Live display
	ErrLiveActive ErrorCode = "LIVE_ACTIVE"

	// Configuration and themes
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrThemeLoad   ErrorCode = "THEME_LOAD"

	// Command line
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
)

// InkError is an error with a code, optional key/value details and an
// optional cause
type InkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *InkError) Error() string {
	switch {
	case e.Wrapped == nil:
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	case e.Message == "":
		return fmt.Sprintf("[%s] %v", e.Code, e.Wrapped)
	default:
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
}

func (e *InkError) Unwrap() error { return e.Wrapped }

// Is matches any *InkError with the same code, so sentinel values such as
// New(ErrLiveActive, "") work with errors.Is
func (e *InkError) Is(target error) bool {
	t, ok := target.(*InkError)
	return ok && t.Code == e.Code
}

func build(cause error, code ErrorCode, message string) *InkError {
	return &InkError{Code: code, Message: message, Wrapped: cause}
}

// New returns an error with code and message
func New(code ErrorCode, message string) *InkError {
	return build(nil, code, message)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InkError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *InkError {
	if err == nil {
		return nil
	}
	return build(err, code, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InkError {
	if err == nil {
		return nil
	}
	return build(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records key on e and returns e for chaining
func (e *InkError) WithDetail(key string, value interface{}) *InkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, 1)
	}
	e.Details[key] = value
	return e
}

// WithDetails records every entry of details on e
func (e *InkError) WithDetails(details map[string]interface{}) *InkError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// Detail returns the value recorded under key
func (e *InkError) Detail(key string) (interface{}, bool) {
	v, ok := e.Details[key]
	return v, ok
}

// From finds the outermost *InkError in err's chain
func From(err error) (*InkError, bool) {
	var inkErr *InkError
	if errors.As(err, &inkErr) {
		return inkErr, true
	}
	return nil, false
}

// IsErrorCode reports whether the outermost coded error in err's chain has
// code
func IsErrorCode(err error, code ErrorCode) bool {
	inkErr, ok := From(err)
	return ok && inkErr.Code == code
}

// GetErrorCode returns the outermost code in err's chain. Uncoded errors
// report ErrUnknown and nil reports "".
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if inkErr, ok := From(err); ok {
		return inkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost coded error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	if inkErr, ok := From(err); ok {
		return inkErr.Details
	}
	return nil
}

package clipnote

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to transport-level errors if
// the pipeline is ever exposed over an API. Individual packages translate
// their dependency errors into one of these codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"      // malformed URL, unrecognized video ID
	ENOTFOUND    = "not_found"    // no content container located
	ETOOSHORT    = "too_short"    // extractor produced too little text
	ENOCAPTIONS  = "no_captions"  // all caption tiers exhausted
	EUNAVAILABLE = "unavailable"  // remote resource could not be fetched
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("clipnote error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

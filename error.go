package coursechef

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"

	// ENOTFOUND reports a fragment or leaf file missing from the course directory.
	ENOTFOUND = "not_found"

	// EMALFORMED reports a fragment file whose structure breaks the
	// single-root, single-attribute reference contract.
	EMALFORMED = "malformed"

	EVIDEOFORMAT  = "video_format"
	EVERTICALTYPE = "vertical_type"
	ENOQUESTIONS  = "no_questions"

	// EASSUMPTION reports a violated structural assumption of the transform,
	// such as more than one video in a video vertical.
	EASSUMPTION = "assumption"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("coursechef error: code=%s message=%s", e.Code, e.Message)
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

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

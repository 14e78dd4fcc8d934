package countsquares

import (
	"errors"
	"fmt"
)

// Error represents a countsquares error with an error code
type Error struct {
	Code    ErrorCode
	Message string
	Index   int   // index of the offending point, -1 if not point related
	Point   Point // the offending point, if Index >= 0
	Err     error // wrapped error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: point %d %v", msg, e.Index, e.Point)
	}
	if e.Err != nil {
		return fmt.Sprintf("countsquares: %s: %v", msg, e.Err)
	}
	return fmt.Sprintf("countsquares: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode identifies the kind of failure.
type ErrorCode int

// Error codes
const (
	// Success indicates the operation completed successfully
	Success ErrorCode = 0

	// ErrInvalidArgument indicates a configuration value out of range
	ErrInvalidArgument ErrorCode = -1

	// ErrCoordinateRange indicates a coordinate outside
	// [MinCoordinate, MaxCoordinate]
	ErrCoordinateRange ErrorCode = -2

	// ErrDuplicatePoint indicates the same point appears more than once
	ErrDuplicatePoint ErrorCode = -3

	// ErrProblem indicates an unexpected internal error
	ErrProblem ErrorCode = -99
)

// Error descriptions
var errorMessages = map[ErrorCode]string{
	Success:            "success",
	ErrInvalidArgument: "invalid argument",
	ErrCoordinateRange: "coordinate out of range",
	ErrDuplicatePoint:  "duplicate point",
	ErrProblem:         "unexpected internal error",
}

// NewError creates a new Error with the given code
func NewError(code ErrorCode) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = fmt.Sprintf("unknown error code %d", code)
	}
	return &Error{Code: code, Message: msg, Index: -1}
}

// WrapError creates a new Error wrapping another error
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code)
	e.Err = err
	return e
}

func newPointError(code ErrorCode, index int, p Point) *Error {
	e := NewError(code)
	e.Index = index
	e.Point = p
	return e
}

// IsInvalidArgument returns true if the error is ErrInvalidArgument
func IsInvalidArgument(err error) bool {
	return Code(err) == ErrInvalidArgument
}

// IsCoordinateRange returns true if the error is ErrCoordinateRange
func IsCoordinateRange(err error) bool {
	return Code(err) == ErrCoordinateRange
}

// IsDuplicatePoint returns true if the error is ErrDuplicatePoint
func IsDuplicatePoint(err error) bool {
	return Code(err) == ErrDuplicatePoint
}

// Code returns the error code from an error, or ErrProblem if not a
// countsquares error
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrProblem
}

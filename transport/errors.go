package transport

import (
	"errors"
	"fmt"
)

// ErrorCode classifies transport errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, reset).
	ErrCodeConnection
	// ErrCodeEncode indicates the request body could not be encoded.
	ErrCodeEncode
	// ErrCodeDecode indicates the response body could not be decoded.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeEncode:
		return "encode"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a structured transport error. Status codes never appear here:
// interpreting a response's status belongs to the caller's resolver, so the
// transport only errors on operational failures.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewEncodeError creates a request body encoding error.
func NewEncodeError(err error) *Error {
	return &Error{Code: ErrCodeEncode, Message: err.Error(), Err: err}
}

// NewDecodeError creates a response body decoding error.
func NewDecodeError(err error) *Error {
	return &Error{Code: ErrCodeDecode, Message: err.Error(), Err: err}
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// IsEncode checks if an error is a request encoding error.
func IsEncode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeEncode
}

// IsDecode checks if an error is a response decoding error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

package minio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies MinIO operation failures.
type ErrorCode string

const (
	ErrCodeConnection   ErrorCode = "connection_error"
	ErrCodeInvalidInput ErrorCode = "invalid_input"
	ErrCodeNotFound     ErrorCode = "not_found"
	ErrCodeInternal     ErrorCode = "internal_error"
)

// Error is a classified MinIO operation error.
type Error struct {
	Code      ErrorCode
	Operation string
	Err       error
	Message   string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("minio %s: %s: %v", e.Operation, e.Code, e.Err)
	}
	return fmt.Sprintf("minio %s: %s: %s", e.Operation, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewConnectionError wraps a connection failure.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Operation: "connect", Err: err}
}

// NewInvalidInputError creates an invalid input error.
func NewInvalidInputError(message string) *Error {
	return &Error{Code: ErrCodeInvalidInput, Operation: "validate", Message: message}
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	code := ErrCodeInternal
	msg := err.Error()
	switch {
	case strings.Contains(msg, "NoSuchKey"), strings.Contains(msg, "NoSuchBucket"):
		code = ErrCodeNotFound
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "no such host"):
		code = ErrCodeConnection
	}
	return &Error{Code: code, Operation: operation, Err: err}
}

// IsNotFound reports whether err is a not-found MinIO error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNotFound
}

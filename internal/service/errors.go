package service

import (
	"errors"
	"fmt"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodePersistence = "PERSISTENCE_ERROR"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func NewNotFound(id int, err error) *BusinessError {
	return &BusinessError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("Task with ID %d not found.", id),
		Details: map[string]any{
			"resource": "task",
			"id":       id,
		},
		Err: err,
	}
}

func NewValidationError(field, reason string, err error) *BusinessError {
	return &BusinessError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("invalid value of field '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
		Err: err,
	}
}

func NewPersistenceError(path string, err error) *BusinessError {
	return &BusinessError{
		Code:    CodePersistence,
		Message: "could not save tasks",
		Details: map[string]any{
			"path": path,
		},
		Err: err,
	}
}

func hasCode(err error, code string) bool {
	var be *BusinessError
	return errors.As(err, &be) && be.Code == code
}

func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func IsPersistence(err error) bool {
	return hasCode(err, CodePersistence)
}

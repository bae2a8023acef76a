// Package apperr holds the error kinds every operation reports to callers.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError is returned when a write collides with existing state,
// such as a unique constraint.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(msg string) error {
	return &ConflictError{Msg: msg}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rule violation of a single write. An empty
// collection is not an error; use Err to convert.
type ValidationError struct {
	Fields []FieldError
}

func NewValidation() *ValidationError {
	return &ValidationError{}
}

// Invalid builds a ValidationError holding a single field failure.
func Invalid(field, message string) error {
	v := NewValidation()
	v.Add(field, message)
	return v
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Required records a missing mandatory field.
func (e *ValidationError) Required(field string) {
	e.Add(field, "This field is required.")
}

// Merge folds the field errors of err into e. A non-validation error is
// returned unchanged so callers can abort on infrastructure failures.
func (e *ValidationError) Merge(err error) error {
	if err == nil {
		return nil
	}
	var other *ValidationError
	if errors.As(err, &other) {
		e.Fields = append(e.Fields, other.Fields...)
		return nil
	}
	return err
}

func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Err returns e when it holds at least one failure, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

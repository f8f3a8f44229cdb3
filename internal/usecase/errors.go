package usecase

import (
	"errors"
	"fmt"

	"cinemax-api/internal/data/repository"
	"cinemax-api/pkg/utils"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")

	// ErrUnavailable is passed through from the repositories untouched.
	ErrUnavailable = repository.ErrUnavailable
)

// serviceError carries a message meant for the client plus the category it belongs to.
type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }
func (e *serviceError) Unwrap() error { return e.kind }

func notFound(format string, args ...any) error {
	return &serviceError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) error {
	return &serviceError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return &serviceError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// ValidationError lists the offending request fields by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

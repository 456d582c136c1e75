package service

import "fmt"

// FieldError attaches a field name and human-readable message to one of the
// domain sentinels, so the transport layer can answer with field-keyed
// validation detail while errors.Is still matches the sentinel.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field, message string, sentinel error) error {
	return &FieldError{Field: field, Message: message, Err: sentinel}
}

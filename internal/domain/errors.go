package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTenantInactive       = errors.New("tenant is inactive")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists for this tenant")
	ErrDuplicateTenantSlug  = errors.New("tenant slug already exists")
	ErrDuplicateCheque      = errors.New("cheque number already registered for this bank")
	ErrInvalidTransition    = errors.New("cheque status transition not allowed")
	ErrInsufficientRole     = errors.New("insufficient role for this action")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrCheckoutAlreadyOpen  = errors.New("an open checkout already exists for this unit")
	ErrRefundAlreadyIssued  = errors.New("refund has already been processed for this checkout")
	ErrAnnouncementNotDraft = errors.New("only draft announcements can be published")
)

// ValidationError carries the field-path-addressed failures of a form
// submission. It is a domain error so handlers can translate it into a
// 422 with every problem visible at once; it never causes a process-level
// failure.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	paths := make([]string, 0, len(e.Fields))
	for p := range e.Fields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

// HasField reports whether the given field path failed validation.
func (e *ValidationError) HasField(path string) bool {
	_, ok := e.Fields[path]
	return ok
}

// Field returns the message recorded for a field path, or "" if the field
// passed.
func (e *ValidationError) Field(path string) string {
	return e.Fields[path]
}

// NewValidationError builds a ValidationError from a field→message map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Package validation implements the request validation pipeline: a small
// declarative rule engine plus per-operation validators for the user
// resource. Rules are pure functions; the engine stops at the first failing
// rule of the first failing field, so Details[0] always identifies the
// first-order problem.
package validation

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Kind classifies which constraint a value violated.
type Kind string

const (
	KindEmpty           Kind = "empty"
	KindTooShort        Kind = "too_short"
	KindTooLong         Kind = "too_long"
	KindPatternMismatch Kind = "pattern_mismatch"
	KindInvalidFormat   Kind = "invalid_format"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
}

// Error is the failure variant of a validation result. It implements the
// domain AppError contract: 422 with a machine-readable details list.
type Error struct {
	details []FieldError
}

// NewError builds a validation error from field failures.
func NewError(details ...FieldError) *Error {
	return &Error{details: details}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.details) == 0 {
		return "validation failed"
	}

	return fmt.Sprintf("validation failed: %s", e.details[0].Message)
}

// HTTPCode returns the HTTP status code.
func (e *Error) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// Message returns the stable response message.
func (e *Error) Message() string {
	return "E_MISSING_OR_INVALID_PARAMS"
}

// Details returns the ordered field failures. Index 0 holds the
// first-order failure.
func (e *Error) Details() any {
	return e.details
}

// FieldErrors returns the typed details list for callers inside the module.
func (e *Error) FieldErrors() []FieldError {
	return e.details
}

// Rule checks a single value and reports the violated constraint, or nil.
type Rule func(path, value string) *FieldError

// checkField evaluates rules in order and returns the first failure.
func checkField(path, value string, rules ...Rule) *FieldError {
	for _, rule := range rules {
		if fe := rule(path, value); fe != nil {
			return fe
		}
	}

	return nil
}

// NotEmpty rejects the empty string.
func NotEmpty() Rule {
	return func(path, value string) *FieldError {
		if value == "" {
			return &FieldError{
				Message: fmt.Sprintf("%q is not allowed to be empty", path),
				Path:    path,
				Kind:    KindEmpty,
			}
		}

		return nil
	}
}

// MinLen rejects values shorter than n characters.
func MinLen(n int) Rule {
	return func(path, value string) *FieldError {
		if utf8.RuneCountInString(value) < n {
			return &FieldError{
				Message: fmt.Sprintf("%q length must be at least %d characters long", path, n),
				Path:    path,
				Kind:    KindTooShort,
			}
		}

		return nil
	}
}

// MaxLen rejects values longer than n characters.
func MaxLen(n int) Rule {
	return func(path, value string) *FieldError {
		if utf8.RuneCountInString(value) > n {
			return &FieldError{
				Message: fmt.Sprintf("%q length must be less than or equal to %d characters long", path, n),
				Path:    path,
				Kind:    KindTooLong,
			}
		}

		return nil
	}
}

// Pattern rejects values that do not match the given expression in full.
func Pattern(re *regexp.Regexp) Rule {
	return func(path, value string) *FieldError {
		if !re.MatchString(value) {
			return &FieldError{
				Message: fmt.Sprintf("%q with value %q fails to match the required pattern: %s", path, value, re),
				Path:    path,
				Kind:    KindPatternMismatch,
			}
		}

		return nil
	}
}

// Email rejects values that are not a syntactically valid email address.
// The grammar check is delegated to go-playground/validator's email tag.
func Email(v *validator.Validate) Rule {
	return func(path, value string) *FieldError {
		if err := v.Var(value, "email"); err != nil {
			return &FieldError{
				Message: fmt.Sprintf("%q must be a valid email", path),
				Path:    path,
				Kind:    KindInvalidFormat,
			}
		}

		return nil
	}
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ObjectID rejects values that are not the persistence layer's native
// identifier shape: 12 raw bytes encoded as 24 hex characters.
func ObjectID() Rule {
	return func(path, value string) *FieldError {
		if !objectIDPattern.MatchString(value) {
			return &FieldError{
				Message: fmt.Sprintf("%q must be a valid object id", path),
				Path:    path,
				Kind:    KindInvalidFormat,
			}
		}

		return nil
	}
}

// Trim normalizes surrounding whitespace away before rules run.
func Trim(value string) string {
	return strings.TrimSpace(value)
}

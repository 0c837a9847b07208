package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// fullNamePattern permits letters and embedded spaces only. Surrounding
// whitespace is trimmed before the pattern runs, so leading/trailing spaces
// never reach it.
var fullNamePattern = regexp.MustCompile(`^[a-zA-Z ]*$`)

const (
	fullNameMinLen = 5
	fullNameMaxLen = 30
)

// UserValidator validates inbound user payloads, one method per operation.
// Construct it once at startup and inject it into the user service.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator is the constructor for UserValidator.
func NewUserValidator() *UserValidator {
	return &UserValidator{
		validate: validator.New(),
	}
}

// CreateProfile is the normalized result of a successful create validation.
type CreateProfile struct {
	Email    string
	FullName string
}

// UpdatePatch is the normalized result of a successful update validation.
type UpdatePatch struct {
	ID       string
	FullName string
}

// ValidateCreate checks email then fullName, in that order, and returns the
// normalized profile or the first failure. Unknown input fields are the
// binding layer's concern and are ignored here.
func (uv *UserValidator) ValidateCreate(email, fullName string) (*CreateProfile, *Error) {
	if fe := checkField("email", email, NotEmpty(), Email(uv.validate)); fe != nil {
		return nil, NewError(*fe)
	}

	fullName = Trim(fullName)
	if fe := uv.checkFullName(fullName); fe != nil {
		return nil, NewError(*fe)
	}

	return &CreateProfile{Email: email, FullName: fullName}, nil
}

// ValidateFindByID checks that id has the native identifier shape.
func (uv *UserValidator) ValidateFindByID(id string) *Error {
	if fe := checkField("id", id, ObjectID()); fe != nil {
		return NewError(*fe)
	}

	return nil
}

// ValidateUpdateByID checks id then fullName, in that order. Email is not
// updatable through this operation.
func (uv *UserValidator) ValidateUpdateByID(id, fullName string) (*UpdatePatch, *Error) {
	if fe := checkField("id", id, ObjectID()); fe != nil {
		return nil, NewError(*fe)
	}

	fullName = Trim(fullName)
	if fe := uv.checkFullName(fullName); fe != nil {
		return nil, NewError(*fe)
	}

	return &UpdatePatch{ID: id, FullName: fullName}, nil
}

// ValidateDeleteByID checks that id has the native identifier shape.
func (uv *UserValidator) ValidateDeleteByID(id string) *Error {
	if fe := checkField("id", id, ObjectID()); fe != nil {
		return NewError(*fe)
	}

	return nil
}

// checkFullName applies the shared fullName rule chain to an
// already-trimmed value.
func (uv *UserValidator) checkFullName(fullName string) *FieldError {
	return checkField("fullName", fullName,
		NotEmpty(),
		MinLen(fullNameMinLen),
		MaxLen(fullNameMaxLen),
		Pattern(fullNamePattern),
	)
}

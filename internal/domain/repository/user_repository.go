// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain/entity"
)

// ErrDuplicateEmail is a domain-specific error returned when a create would
// violate the uniqueness constraint on the email field.
var ErrDuplicateEmail = errors.New("email already taken")

// UpdateOutcome reports what a single-record update actually did. It is a
// backend-agnostic value type: Matched false means no record had the given id.
type UpdateOutcome struct {
	Matched  bool `json:"matched"`
	Modified bool `json:"modified"`
}

// DeleteOutcome reports whether a single-record delete removed anything.
// Deleted false is not an error condition.
type DeleteOutcome struct {
	Deleted bool `json:"deleted"`
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and fills in the assigned id.
	// Returns ErrDuplicateEmail when the email collides with an existing record.
	Create(ctx context.Context, user *entity.User) error

	// FindAll retrieves every stored user in insertion order.
	// An empty store yields an empty slice, never nil.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by id. An absent record is reported
	// as (nil, nil), not as an error.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateByID sets the full name of the user with the given id.
	// A missing record is reported through UpdateOutcome.Matched.
	UpdateByID(ctx context.Context, id string, fullName string) (*UpdateOutcome, error)

	// DeleteByID removes the user with the given id. A missing record is
	// reported through DeleteOutcome.Deleted.
	DeleteByID(ctx context.Context, id string) (*DeleteOutcome, error)
}

// Package usecase contains the application-specific business rules.
// It orchestrates validation and persistence for each operation.
package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/repository"
)

// --- Input DTOs ---

// CreateUserInput defines the payload for creating a user.
type CreateUserInput struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// UpdateUserInput defines the payload for updating a user's full name.
// Email is not updatable through this operation.
type UpdateUserInput struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// DeleteUserInput defines the payload for deleting a user.
type DeleteUserInput struct {
	ID string `json:"id"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Create validates the payload and persists a new user.
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// FindAll returns every stored user. There is no input to validate.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID returns the user with the given id, or (nil, nil) when no
	// such record exists; absence is a successful outcome, not an error.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateByID validates the patch and applies it. A missing record is a
	// successful outcome with Matched false.
	UpdateByID(ctx context.Context, input *UpdateUserInput) (*repository.UpdateOutcome, error)

	// DeleteByID validates the id and removes the record. A missing record
	// is a successful outcome with Deleted false.
	DeleteByID(ctx context.Context, input *DeleteUserInput) (*repository.DeleteOutcome, error)
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/usecase"
	"usersvc/internal/validation"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface. Each method runs the
// validation step first; validation failures never reach the repository.
// Storage errors are reclassified into the domain taxonomy here, so the
// delivery layer never inspects raw storage error types.
type userService struct {
	userRepo  repository.UserRepository
	validator *validation.UserValidator
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	validator *validation.UserValidator,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the profile and persists it. A duplicate email surfaces
// as the conflict error; any other storage failure as an internal one.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	profile, verr := srv.validator.ValidateCreate(input.Email, input.FullName)
	if verr != nil {
		return nil, errors.WithStack(verr)
	}

	user := &entity.User{
		Email:    profile.Email,
		FullName: profile.FullName,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	srv.log(ctx).Info("user created", slog.String("id", user.ID), slog.String("email", user.Email))

	return user, nil
}

// FindAll returns every stored user.
func (srv *userService) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	return users, nil
}

// FindByID returns the matching user, or (nil, nil) when absent.
func (srv *userService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if verr := srv.validator.ValidateFindByID(id); verr != nil {
		return nil, errors.WithStack(verr)
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	return user, nil
}

// UpdateByID applies the validated patch and reports what happened.
func (srv *userService) UpdateByID(ctx context.Context, input *usecase.UpdateUserInput) (*repository.UpdateOutcome, error) {
	patch, verr := srv.validator.ValidateUpdateByID(input.ID, input.FullName)
	if verr != nil {
		return nil, errors.WithStack(verr)
	}

	outcome, err := srv.userRepo.UpdateByID(ctx, patch.ID, patch.FullName)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	srv.log(ctx).Info("user updated",
		slog.String("id", patch.ID),
		slog.Bool("matched", outcome.Matched),
		slog.Bool("modified", outcome.Modified),
	)

	return outcome, nil
}

// DeleteByID removes the record and reports what happened. Deleting a
// nonexistent id is a successful outcome with Deleted false.
func (srv *userService) DeleteByID(ctx context.Context, input *usecase.DeleteUserInput) (*repository.DeleteOutcome, error) {
	if verr := srv.validator.ValidateDeleteByID(input.ID); verr != nil {
		return nil, errors.WithStack(verr)
	}

	outcome, err := srv.userRepo.DeleteByID(ctx, input.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err)
	}

	srv.log(ctx).Info("user deleted", slog.String("id", input.ID), slog.Bool("deleted", outcome.Deleted))

	return outcome, nil
}

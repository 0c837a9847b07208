package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/infra/persistence/memory"
	"usersvc/internal/usecase"
	"usersvc/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (usecase.UserUsecase, repository.UserRepository) {
	t.Helper()

	repo := memory.NewUserRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(repo, validation.NewUserValidator(), logger)

	return service, repo
}

// brokenRepo fails every operation, standing in for a storage outage.
type brokenRepo struct{}

func (brokenRepo) Create(context.Context, *entity.User) error { return errors.New("boom") }
func (brokenRepo) FindAll(context.Context) ([]*entity.User, error) {
	return nil, errors.New("boom")
}
func (brokenRepo) FindByID(context.Context, string) (*entity.User, error) {
	return nil, errors.New("boom")
}
func (brokenRepo) UpdateByID(context.Context, string, string) (*repository.UpdateOutcome, error) {
	return nil, errors.New("boom")
}
func (brokenRepo) DeleteByID(context.Context, string) (*repository.DeleteOutcome, error) {
	return nil, errors.New("boom")
}

func TestUserService_Create_Success(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := service.Create(ctx, &usecase.CreateUserInput{
		Email:    "test@example.com",
		FullName: "JohnDoe",
	})

	require.NoError(t, err)
	assert.Len(t, user.ID, 24)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "JohnDoe", user.FullName)
}

func TestUserService_Create_InvalidInput(t *testing.T) {
	service, repo := newTestUserService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, &usecase.CreateUserInput{
		Email:    "",
		FullName: "Tester",
	})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, http.StatusUnprocessableEntity, verr.HTTPCode())
	assert.Equal(t, validation.KindEmpty, verr.FieldErrors()[0].Kind)

	// Validation failures must never reach the persistence layer.
	users, repoErr := repo.FindAll(ctx)
	require.NoError(t, repoErr)
	assert.Empty(t, users)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	service, repo := newTestUserService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, &usecase.CreateUserInput{Email: "dup@example.com", FullName: "First User"})
	require.NoError(t, err)

	_, err = service.Create(ctx, &usecase.CreateUserInput{Email: "dup@example.com", FullName: "Second User"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "E_DUPLICATE_EMAIL", appErr.Message())

	// Exactly one record with that email survives.
	users, repoErr := repo.FindAll(ctx)
	require.NoError(t, repoErr)
	count := 0
	for _, user := range users {
		if user.Email == "dup@example.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUserService_FindAll_Empty(t *testing.T) {
	service, _ := newTestUserService(t)

	users, err := service.FindAll(context.Background())

	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_FindByID_Idempotent(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &usecase.CreateUserInput{Email: "idem@example.com", FullName: "Idempotent"})
	require.NoError(t, err)

	first, err := service.FindByID(ctx, created.ID)
	require.NoError(t, err)
	second, err := service.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUserService_FindByID_AbsentIsNotAnError(t *testing.T) {
	service, _ := newTestUserService(t)

	user, err := service.FindByID(context.Background(), "507f1f77bcf86cd799439011")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_FindByID_MalformedID(t *testing.T) {
	service, _ := newTestUserService(t)

	_, err := service.FindByID(context.Background(), "not-an-id")

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindInvalidFormat, verr.FieldErrors()[0].Kind)
}

func TestUserService_UpdateByID_Success(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &usecase.CreateUserInput{Email: "upd@example.com", FullName: "Before Name"})
	require.NoError(t, err)

	outcome, err := service.UpdateByID(ctx, &usecase.UpdateUserInput{ID: created.ID, FullName: "After Name"})

	require.NoError(t, err)
	assert.True(t, outcome.Matched)
	assert.True(t, outcome.Modified)

	updated, err := service.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After Name", updated.FullName)
	assert.Equal(t, "upd@example.com", updated.Email)
}

func TestUserService_UpdateByID_NotFoundIsAnOutcome(t *testing.T) {
	service, _ := newTestUserService(t)

	outcome, err := service.UpdateByID(context.Background(), &usecase.UpdateUserInput{
		ID:       "507f1f77bcf86cd799439011",
		FullName: "Ghost Name",
	})

	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.False(t, outcome.Modified)
}

func TestUserService_UpdateByID_ShortName(t *testing.T) {
	service, _ := newTestUserService(t)

	_, err := service.UpdateByID(context.Background(), &usecase.UpdateUserInput{
		ID:       "507f1f77bcf86cd799439011",
		FullName: "abcd",
	})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validation.KindTooShort, verr.FieldErrors()[0].Kind)
}

func TestUserService_DeleteByID(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &usecase.CreateUserInput{Email: "del@example.com", FullName: "To Delete"})
	require.NoError(t, err)

	outcome, err := service.DeleteByID(ctx, &usecase.DeleteUserInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, outcome.Deleted)

	// Deleting a nonexistent id succeeds with Deleted false.
	outcome, err = service.DeleteByID(ctx, &usecase.DeleteUserInput{ID: created.ID})
	require.NoError(t, err)
	assert.False(t, outcome.Deleted)
}

func TestUserService_StorageFailuresSurfaceAsInternal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(brokenRepo{}, validation.NewUserValidator(), logger)
	ctx := context.Background()

	_, err := service.Create(ctx, &usecase.CreateUserInput{Email: "ok@example.com", FullName: "Valid Name"})
	assertInternal(t, err)

	_, err = service.FindAll(ctx)
	assertInternal(t, err)

	_, err = service.FindByID(ctx, "507f1f77bcf86cd799439011")
	assertInternal(t, err)

	_, err = service.UpdateByID(ctx, &usecase.UpdateUserInput{ID: "507f1f77bcf86cd799439011", FullName: "Valid Name"})
	assertInternal(t, err)

	_, err = service.DeleteByID(ctx, &usecase.DeleteUserInput{ID: "507f1f77bcf86cd799439011"})
	assertInternal(t, err)
}

func assertInternal(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "internal server error", appErr.Message())
}

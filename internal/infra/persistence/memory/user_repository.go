// Package memory provides an in-process implementation of the user
// repository with the same observable semantics as the MongoDB one:
// generated 24-hex identifiers, a unique email constraint, and
// insertion-ordered listing. It backs the test suites and local development
// without a running database.
package memory

import (
	"context"
	"sync"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userRepository implements repository.UserRepository over a map guarded by
// a mutex. Insertion order is tracked separately so FindAll matches the
// document store's natural order.
type userRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID: make(map[string]*entity.User),
	}
}

// Create stores a copy of the user and assigns a fresh identifier.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.byID {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = primitive.NewObjectID().Hex()
	stored := *user
	repo.byID[user.ID] = &stored
	repo.order = append(repo.order, user.ID)

	return nil
}

// FindAll returns copies of every stored user in insertion order.
func (repo *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]*entity.User, 0, len(repo.order))
	for _, id := range repo.order {
		user := *repo.byID[id]
		users = append(users, &user)
	}

	return users, nil
}

// FindByID returns a copy of the matching user, or (nil, nil) when absent.
func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.byID[id]
	if !ok {
		return nil, nil
	}

	user := *stored

	return &user, nil
}

// UpdateByID sets the full name of the matching user.
func (repo *userRepository) UpdateByID(_ context.Context, id string, fullName string) (*repository.UpdateOutcome, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.byID[id]
	if !ok {
		return &repository.UpdateOutcome{}, nil
	}

	modified := stored.FullName != fullName
	stored.FullName = fullName

	return &repository.UpdateOutcome{
		Matched:  true,
		Modified: modified,
	}, nil
}

// DeleteByID removes the matching user.
func (repo *userRepository) DeleteByID(_ context.Context, id string) (*repository.DeleteOutcome, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byID[id]; !ok {
		return &repository.DeleteOutcome{}, nil
	}

	delete(repo.byID, id)
	for i, existing := range repo.order {
		if existing == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return &repository.DeleteOutcome{Deleted: true}, nil
}

// checkID mirrors the MongoDB implementation's behavior for ids that do not
// have the native identifier shape.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return errors.Wrap(err, "failed to parse object id")
	}

	return nil
}

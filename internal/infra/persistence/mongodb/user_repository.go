package mongodb

import (
	"context"

	"usersvc/internal/domain/entity"
	"usersvc/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userCollection is the collection backing the user resource.
const userCollection = "usermodel"

// userDocument is the persistence model for a user. It stays inside this
// package; the rest of the module only sees the domain entity.
type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	FullName string             `bson:"fullName"`
}

// userRepository implements the repository.UserRepository interface using
// the MongoDB driver.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository. It returns the
// repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(userCollection),
	}
}

// Create inserts a new user document and writes the assigned id back into
// the entity. A collision on the unique email index is reported as
// repository.ErrDuplicateEmail.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := &userDocument{
		Email:    user.Email,
		FullName: user.FullName,
	}

	result, err := repo.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to insert user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	user.ID = oid.Hex()

	return nil
}

// FindAll retrieves every stored user in natural (insertion) order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query users")
	}
	defer cursor.Close(ctx)

	users := make([]*entity.User, 0)
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode user")
		}
		users = append(users, toUserDomain(&doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// FindByID retrieves a single user by id. An absent record yields (nil, nil).
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse object id")
	}

	var doc userDocument
	err = repo.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&doc), nil
}

// UpdateByID sets the full name of the matching user. The driver's matched
// and modified counts collapse into the backend-agnostic outcome type.
func (repo *userRepository) UpdateByID(ctx context.Context, id string, fullName string) (*repository.UpdateOutcome, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse object id")
	}

	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"fullName": fullName}},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return &repository.UpdateOutcome{
		Matched:  result.MatchedCount > 0,
		Modified: result.ModifiedCount > 0,
	}, nil
}

// DeleteByID removes the matching user. A zero deleted count is reported
// through the outcome, not as an error.
func (repo *userRepository) DeleteByID(ctx context.Context, id string) (*repository.DeleteOutcome, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse object id")
	}

	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	return &repository.DeleteOutcome{
		Deleted: result.DeletedCount > 0,
	}, nil
}

// toUserDomain converts a persistence document to a domain User entity.
func toUserDomain(doc *userDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:       doc.ID.Hex(),
		Email:    doc.Email,
		FullName: doc.FullName,
	}
}

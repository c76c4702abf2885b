package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"server/internal/domain"
)

// UserRepositoryMongo implements domain.UserRepository backed by MongoDB.
type UserRepositoryMongo struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepositoryMongo on the users collection.
func NewUserRepository(db *mongo.Database) *UserRepositoryMongo {
	return &UserRepositoryMongo{coll: db.Collection("users")}
}

// EnsureIndexes creates the unique index on email. Uniqueness is enforced at
// the store level rather than by a check-then-insert sequence, which would
// race under concurrent registrations.
func (r *UserRepositoryMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

// List returns every registered user.
func (r *UserRepositoryMongo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var items []domain.User
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return items, nil
}

// GetByEmail fetches a user by email address.
func (r *UserRepositoryMongo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user and returns the generated id in hex form.
func (r *UserRepositoryMongo) Create(ctx context.Context, user *domain.User) (string, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

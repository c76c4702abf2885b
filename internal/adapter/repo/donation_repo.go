package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"server/internal/domain"
)

// DonationRepositoryMongo implements domain.DonationRepository backed by MongoDB.
type DonationRepositoryMongo struct {
	coll *mongo.Collection
}

// NewDonationRepository creates a new donation repo on the donations collection.
func NewDonationRepository(db *mongo.Database) *DonationRepositoryMongo {
	return &DonationRepositoryMongo{coll: db.Collection("donations")}
}

// Create inserts a new donation record and fills in the generated id.
func (r *DonationRepositoryMongo) Create(ctx context.Context, donation *domain.Donation) error {
	res, err := r.coll.InsertOne(ctx, donation)
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert donation: unexpected id type %T", res.InsertedID)
	}
	donation.ID = oid
	return nil
}

// ListByContributor returns all donations made by the given email, newest first.
func (r *DonationRepositoryMongo) ListByContributor(ctx context.Context, email string) ([]domain.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"contributorEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	var items []domain.Donation
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode donations: %w", err)
	}
	return items, nil
}

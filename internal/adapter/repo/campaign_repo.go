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

// CampaignRepositoryMongo implements domain.CampaignRepository backed by MongoDB.
type CampaignRepositoryMongo struct {
	coll *mongo.Collection
}

// NewCampaignRepository creates a new campaign repo on the campaigns collection.
func NewCampaignRepository(db *mongo.Database) *CampaignRepositoryMongo {
	return &CampaignRepositoryMongo{coll: db.Collection("campaigns")}
}

// List returns every campaign in natural store order.
func (r *CampaignRepositoryMongo) List(ctx context.Context) ([]domain.Campaign, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	var items []domain.Campaign
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	return items, nil
}

// GetByID fetches a campaign by its hex ObjectID.
func (r *CampaignRepositoryMongo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var c domain.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// Create inserts a new campaign and returns the generated id in hex form.
func (r *CampaignRepositoryMongo) Create(ctx context.Context, campaign *domain.Campaign) (string, error) {
	res, err := r.coll.InsertOne(ctx, campaign)
	if err != nil {
		return "", fmt.Errorf("insert campaign: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert campaign: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update applies the non-nil patch fields and returns the resulting campaign
// along with whether anything actually changed.
func (r *CampaignRepositoryMongo) Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, domain.ErrInvalidID
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = *patch.Thumbnail
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.MinimumDonation != nil {
		set["minimumDonation"] = *patch.MinimumDonation
	}
	if patch.Goal != nil {
		set["goal"] = *patch.Goal
	}
	if patch.ExpiredDate != nil {
		set["expiredDate"] = *patch.ExpiredDate
	}
	if patch.Creator != nil {
		set["creator"] = *patch.Creator
	}

	changed := false
	if len(set) > 0 {
		res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, false, fmt.Errorf("update campaign: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, false, domain.ErrNotFound
		}
		changed = res.ModifiedCount > 0
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return updated, changed, nil
}

// Delete removes a campaign. Donations referencing it are kept; they carry
// their own title snapshot.
func (r *CampaignRepositoryMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyDonation increments raised and records the contributor in one update,
// so concurrent donations to the same campaign cannot lose each other.
func (r *CampaignRepositoryMongo) ApplyDonation(ctx context.Context, id string, amount float64, contributor string) (*domain.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	update := bson.M{
		"$inc":      bson.M{"raised": amount},
		"$addToSet": bson.M{"contributors": contributor},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.Campaign
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("apply donation: %w", err)
	}
	return &c, nil
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign represents a fundraising project with a goal and a running total.
type Campaign struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Thumbnail       string             `bson:"thumbnail" json:"thumbnail"`
	Type            string             `bson:"type" json:"type"`
	Description     string             `bson:"description" json:"description"`
	MinimumDonation float64            `bson:"minimumDonation" json:"minimumDonation"`
	Goal            float64            `bson:"goal" json:"goal"`
	Raised          float64            `bson:"raised" json:"raised"`
	ExpiredDate     time.Time          `bson:"expiredDate" json:"expiredDate"`
	Creator         string             `bson:"creator" json:"creator"`
	Contributors    []string           `bson:"contributors" json:"contributors"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// CampaignPatch carries the client-writable campaign fields for partial
// updates. Nil pointers mean "leave unchanged"; raised, contributors and
// created_at are never client-writable.
type CampaignPatch struct {
	Title           *string    `json:"title" bson:"title,omitempty"`
	Thumbnail       *string    `json:"thumbnail" bson:"thumbnail,omitempty"`
	Type            *string    `json:"type" bson:"type,omitempty"`
	Description     *string    `json:"description" bson:"description,omitempty"`
	MinimumDonation *float64   `json:"minimumDonation" bson:"minimumDonation,omitempty"`
	Goal            *float64   `json:"goal" bson:"goal,omitempty"`
	ExpiredDate     *time.Time `json:"expiredDate" bson:"expiredDate,omitempty"`
	Creator         *string    `json:"creator" bson:"creator,omitempty"`
}

// IsEmpty reports whether the patch sets no fields at all.
func (p CampaignPatch) IsEmpty() bool {
	return p.Title == nil && p.Thumbnail == nil && p.Type == nil &&
		p.Description == nil && p.MinimumDonation == nil && p.Goal == nil &&
		p.ExpiredDate == nil && p.Creator == nil
}

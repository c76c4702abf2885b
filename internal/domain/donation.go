package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is an immutable record of one contribution event. The campaign
// title is denormalized at donation time so the record survives later
// campaign edits or deletion.
type Donation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID       primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	CampaignTitle    string             `bson:"campaignTitle" json:"campaignTitle"`
	ContributorEmail string             `bson:"contributorEmail" json:"contributorEmail"`
	ContributorName  string             `bson:"contributorName" json:"contributorName"`
	Amount           float64            `bson:"amount" json:"amount"`
	Date             time.Time          `bson:"date" json:"date"`
}

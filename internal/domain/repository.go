package domain

import "context"

// CampaignRepository defines access methods for campaigns. Identifiers are
// the canonical textual form of store-generated ids; implementations return
// ErrInvalidID when the text is not a well-formed identifier.
type CampaignRepository interface {
	List(ctx context.Context) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Create(ctx context.Context, campaign *Campaign) (string, error)
	Update(ctx context.Context, id string, patch CampaignPatch) (*Campaign, bool, error)
	Delete(ctx context.Context, id string) error

	// ApplyDonation atomically increments the campaign's raised total and
	// records the contributor at most once, returning the updated campaign.
	ApplyDonation(ctx context.Context, id string, amount float64, contributor string) (*Campaign, error)
}

// UserRepository defines access methods for users.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user and returns its id. ErrEmailTaken is
	// returned when the email is already registered.
	Create(ctx context.Context, user *User) (string, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Create inserts the donation and fills in its generated ID.
	Create(ctx context.Context, donation *Donation) error
	ListByContributor(ctx context.Context, email string) ([]Donation, error)
}

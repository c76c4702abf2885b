package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/validation"
)

type donateRequest struct {
	Amount           float64 `json:"amount"`
	ContributorEmail string  `json:"contributorEmail" validate:"required,email"`
	ContributorName  string  `json:"contributorName" validate:"required"`
}

// CampaignsDonate records one contribution: it validates the amount against
// the campaign minimum, stores an immutable donation with a title snapshot,
// then applies the raised/contributors update in a single atomic store write.
// The donation insert and the campaign update are still two separate writes;
// a crash between them leaves a donation without a raised-amount update.
func (a *App) CampaignsDonate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validation.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Amount <= 0 {
		a.fail(w, r, domain.ErrInvalidAmount)
		return
	}

	campaign, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if req.Amount < campaign.MinimumDonation {
		a.fail(w, r, domain.ErrBelowMinimum)
		return
	}

	donation := &domain.Donation{
		CampaignID:       campaign.ID,
		CampaignTitle:    campaign.Title,
		ContributorEmail: req.ContributorEmail,
		ContributorName:  req.ContributorName,
		Amount:           req.Amount,
		Date:             time.Now().UTC(),
	}
	if err := a.Donations.Create(r.Context(), donation); err != nil {
		a.fail(w, r, err)
		return
	}

	updated, err := a.Campaigns.ApplyDonation(r.Context(), campaign.ID.Hex(), req.Amount, req.ContributorEmail)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"campaign": updated,
		"donation": donation,
	})
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		a.fail(w, r, domain.ErrMissingParameter)
		return
	}

	items, err := a.Donations.ListByContributor(r.Context(), email)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	a.json(w, http.StatusOK, items)
}

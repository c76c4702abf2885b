package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/validation"
)

type campaignCreateRequest struct {
	Title           string    `json:"title" validate:"required"`
	Thumbnail       string    `json:"thumbnail" validate:"omitempty,url"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	MinimumDonation float64   `json:"minimumDonation" validate:"gte=0"`
	Goal            float64   `json:"goal" validate:"gte=0"`
	ExpiredDate     time.Time `json:"expiredDate"`
	Creator         string    `json:"creator"`
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Campaign{}
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, campaign)
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validation.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	campaign := &domain.Campaign{
		Title:           req.Title,
		Thumbnail:       req.Thumbnail,
		Type:            req.Type,
		Description:     req.Description,
		MinimumDonation: req.MinimumDonation,
		Goal:            req.Goal,
		Raised:          0,
		ExpiredDate:     req.ExpiredDate,
		Creator:         req.Creator,
		Contributors:    []string{},
		CreatedAt:       time.Now().UTC(),
	}

	id, err := a.Campaigns.Create(r.Context(), campaign)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"insertedId": id})
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := decode(r, &patch); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if patch.MinimumDonation != nil && *patch.MinimumDonation < 0 {
		a.error(w, http.StatusBadRequest, "minimumDonation must be at least 0")
		return
	}
	if patch.Goal != nil && *patch.Goal < 0 {
		a.error(w, http.StatusBadRequest, "goal must be at least 0")
		return
	}

	updated, changed, err := a.Campaigns.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !changed {
		a.json(w, http.StatusOK, map[string]string{"message": "no changes applied"})
		return
	}
	a.json(w, http.StatusOK, updated)
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"message": "campaign deleted"})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// App bundles the repositories and logger shared by all handlers.
type App struct {
	Campaigns domain.CampaignRepository
	Users     domain.UserRepository
	Donations domain.DonationRepository
	Log       zerolog.Logger

	// Ping probes the store for the health endpoint. Optional.
	Ping func(ctx context.Context) error
}

// NewApp wires the handler container with its injected dependencies.
func NewApp(campaigns domain.CampaignRepository, users domain.UserRepository, donations domain.DonationRepository, log zerolog.Logger) *App {
	return &App{Campaigns: campaigns, Users: users, Donations: donations, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// fail classifies an operation error into a client response. Validation
// failures map to 400, absence to 404, duplicate registration to 409; anything
// else is logged and reported as a generic 500 so internal detail never
// reaches the caller.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrBelowMinimum),
		errors.Is(err, domain.ErrMissingParameter):
		a.error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		a.error(w, http.StatusConflict, err.Error())
	default:
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal server error")
	}
}

// decode strictly parses a JSON request body into dst, rejecting unknown
// fields so mistyped payload keys fail loudly instead of being dropped.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

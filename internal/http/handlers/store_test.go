package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
)

// fakeState is an in-memory stand-in for the three store collections.
type fakeState struct {
	mu        sync.Mutex
	campaigns map[string]*domain.Campaign
	users     map[string]*domain.User
	donations []domain.Donation
}

func newFakeState() *fakeState {
	return &fakeState{
		campaigns: map[string]*domain.Campaign{},
		users:     map[string]*domain.User{},
	}
}

type fakeCampaigns struct{ s *fakeState }

func (f *fakeCampaigns) List(context.Context) ([]domain.Campaign, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var items []domain.Campaign
	for _, c := range f.s.campaigns {
		items = append(items, *c)
	}
	return items, nil
}

func (f *fakeCampaigns) GetByID(_ context.Context, id string) (*domain.Campaign, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaigns) Create(_ context.Context, campaign *domain.Campaign) (string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	campaign.ID = primitive.NewObjectID()
	f.s.campaigns[campaign.ID.Hex()] = campaign
	return campaign.ID.Hex(), nil
}

func (f *fakeCampaigns) Update(_ context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, false, domain.ErrInvalidID
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.campaigns[id]
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	changed := false
	if patch.Title != nil && *patch.Title != c.Title {
		c.Title = *patch.Title
		changed = true
	}
	if patch.Thumbnail != nil && *patch.Thumbnail != c.Thumbnail {
		c.Thumbnail = *patch.Thumbnail
		changed = true
	}
	if patch.Type != nil && *patch.Type != c.Type {
		c.Type = *patch.Type
		changed = true
	}
	if patch.Description != nil && *patch.Description != c.Description {
		c.Description = *patch.Description
		changed = true
	}
	if patch.MinimumDonation != nil && *patch.MinimumDonation != c.MinimumDonation {
		c.MinimumDonation = *patch.MinimumDonation
		changed = true
	}
	if patch.Goal != nil && *patch.Goal != c.Goal {
		c.Goal = *patch.Goal
		changed = true
	}
	if patch.ExpiredDate != nil && !patch.ExpiredDate.Equal(c.ExpiredDate) {
		c.ExpiredDate = *patch.ExpiredDate
		changed = true
	}
	if patch.Creator != nil && *patch.Creator != c.Creator {
		c.Creator = *patch.Creator
		changed = true
	}
	cp := *c
	return &cp, changed, nil
}

func (f *fakeCampaigns) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.campaigns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.s.campaigns, id)
	return nil
}

func (f *fakeCampaigns) ApplyDonation(_ context.Context, id string, amount float64, contributor string) (*domain.Campaign, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.campaigns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Raised += amount
	present := false
	for _, existing := range c.Contributors {
		if existing == contributor {
			present = true
			break
		}
	}
	if !present {
		c.Contributors = append(c.Contributors, contributor)
	}
	cp := *c
	return &cp, nil
}

type fakeUsers struct{ s *fakeState }

func (f *fakeUsers) List(context.Context) ([]domain.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var items []domain.User
	for _, u := range f.s.users {
		items = append(items, *u)
	}
	return items, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) (string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.users[user.Email]; ok {
		return "", domain.ErrEmailTaken
	}
	user.ID = primitive.NewObjectID()
	f.s.users[user.Email] = user
	return user.ID.Hex(), nil
}

type fakeDonations struct{ s *fakeState }

func (f *fakeDonations) Create(_ context.Context, donation *domain.Donation) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	donation.ID = primitive.NewObjectID()
	f.s.donations = append(f.s.donations, *donation)
	return nil
}

func (f *fakeDonations) ListByContributor(_ context.Context, email string) ([]domain.Donation, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var items []domain.Donation
	for _, d := range f.s.donations {
		if d.ContributorEmail == email {
			items = append(items, d)
		}
	}
	return items, nil
}

// newTestServer wires the handler container to the in-memory store and the
// real router, so tests exercise routing, middleware and handlers together.
func newTestServer(t *testing.T) (*fakeState, http.Handler) {
	t.Helper()
	state := newFakeState()
	app := handlers.NewApp(&fakeCampaigns{s: state}, &fakeUsers{s: state}, &fakeDonations{s: state}, zerolog.Nop())
	return state, httpapi.NewRouter(app, zerolog.Nop(), []string{"*"})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/validation"
)

type userCreateRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
	Password string `json:"password" validate:"required"`
}

func (a *App) UsersList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Users.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if items == nil {
		items = []domain.User{}
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) UsersGetByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := a.Users.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, user)
}

func (a *App) UsersCreate(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validation.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &domain.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}

	id, err := a.Users.Create(r.Context(), user)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"insertedId": id})
}

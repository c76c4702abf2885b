package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter builds the chi router with the service's middleware stack and
// route table.
func NewRouter(app *handlers.App, log zerolog.Logger, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.Get("/", app.Root)
	r.Get("/healthz", app.Health)

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Post("/", app.CampaignsCreate)
		r.Get("/{id}", app.CampaignsGet)
		r.Put("/{id}", app.CampaignsUpdate)
		r.Delete("/{id}", app.CampaignsDelete)
		r.Post("/{id}/donate", app.CampaignsDonate)
	})

	r.Get("/donations", app.DonationsList)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", app.UsersList)
		r.Post("/", app.UsersCreate)
		r.Get("/{email}", app.UsersGetByEmail)
	})

	return r
}

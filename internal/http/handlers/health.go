package handlers

import (
	"net/http"
)

// Root serves the plain-text greeting at /.
func (a *App) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello, World!"))
}

// Health reports whether the store is reachable.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	if a.Ping != nil {
		if err := a.Ping(r.Context()); err != nil {
			a.Log.Error().Err(err).Msg("store ping failed")
			a.json(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

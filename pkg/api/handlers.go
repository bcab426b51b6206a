package api

import (
	"log/slog"
	"net/http"
)

// healthCheck verifies the server is running and returns 200 OK.
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("Ok")); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write response", "error", err)
		return
	}
}

// search handles GET /search?keyword=... . A missing or empty keyword is
// rejected with 404 before the query ever reaches the search service,
// matching the source engine's behavior of refusing to run an empty-string
// search.
func (a *API) search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		http.NotFound(w, r)
		return
	}

	body, err := a.svc.Search(r.Context(), keyword)
	if err != nil {
		slog.ErrorContext(r.Context(), "search failed", "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(body)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}

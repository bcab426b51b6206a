package api

import (
	"net/http"

	"github.com/ksysoev/htmlidx/pkg/api/middleware"
)

// newMux creates and returns a new HTTP ServeMux with the API's routes registered.
func (a *API) newMux() *http.ServeMux {
	mux := http.NewServeMux()

	withReqID := middleware.NewReqID()

	mux.Handle("GET /livez", middleware.Use(a.healthCheck, withReqID))
	mux.Handle("GET /search", middleware.Use(a.search, withReqID))

	return mux
}

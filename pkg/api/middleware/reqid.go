package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// reqIDKey is the context key under which NewReqID stores the request ID.
type reqIDKey struct{}

// ReqIDHeader is the response header the request ID is echoed on, so a
// caller can correlate a response with server-side logs.
const ReqIDHeader = "X-Request-ID"

// NewReqID returns a middleware that assigns a fresh UUID to every request,
// making it available via ReqIDFromContext and echoing it back on the
// response so clients and server logs can be correlated.
func NewReqID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()

			w.Header().Set(ReqIDHeader, id)

			ctx := context.WithValue(r.Context(), reqIDKey{}, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ReqIDFromContext returns the request ID stored by NewReqID, or "" if
// none is present.
func ReqIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(reqIDKey{}).(string)
	return id
}

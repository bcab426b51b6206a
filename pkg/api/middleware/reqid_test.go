package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReqID_SetsHeaderAndContext(t *testing.T) {
	var gotID string

	handler := NewReqID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = ReqIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, gotID)
	assert.Equal(t, gotID, rec.Header().Get(ReqIDHeader))
}

func TestReqIDFromContext_EmptyWhenAbsent(t *testing.T) {
	assert.Empty(t, ReqIDFromContext(t.Context()))
}

func TestUse_AppliesInOrder(t *testing.T) {
	var order []string

	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Use(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}, mark("outer"), mark("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

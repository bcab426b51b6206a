package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_ReturnsOK(t *testing.T) {
	a, err := New(Config{Listen: ":0"}, stubService{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.healthCheck(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ok", rec.Body.String())
}

func TestSearch_EmptyKeywordReturns404(t *testing.T) {
	a, err := New(Config{Listen: ":0"}, stubService{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.search(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearch_ReturnsServiceResult(t *testing.T) {
	a, err := New(Config{Listen: ":0"}, stubService{result: `[{"title":"Asio"}]`})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.search(rec, httptest.NewRequest(http.MethodGet, "/search?keyword=asio", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"title":"Asio"}]`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestSearch_ServiceErrorReturns500(t *testing.T) {
	a, err := New(Config{Listen: ":0"}, stubService{err: errors.New("boom")})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.search(rec, httptest.NewRequest(http.MethodGet, "/search?keyword=asio", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

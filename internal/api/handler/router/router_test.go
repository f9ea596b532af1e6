package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouterAppliesMiddlewaresInOrder(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var patterns []string
	rt := New(
		WithInstrumentation(func(pattern string) func(http.Handler) http.Handler {
			patterns = append(patterns, pattern)
			return tag("instrument")
		}),
		WithRoutes(Route{
			Path:   "/v1/clients/:id/sync",
			Method: http.MethodPost,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("id"))
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
		}),
	)

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/clients/42/sync", nil))

	assert.Equal(t, []string{"/v1/clients/:id/sync"}, patterns)
	assert.Equal(t, []string{"instrument", "first", "second", "handler:42"}, calls)
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()

	New().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

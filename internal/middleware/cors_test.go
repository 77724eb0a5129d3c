package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func preflight(handler http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/product", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("DevelopmentAllowsAnyOrigin", func(t *testing.T) {
		handler := CORSMiddleware([]string{"https://shop.example"}, true)(next)

		w := preflight(handler, "https://elsewhere.example")
		require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ProductionRestrictsOrigins", func(t *testing.T) {
		handler := CORSMiddleware([]string{"https://shop.example"}, false)(next)

		w := preflight(handler, "https://shop.example")
		require.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

		w = preflight(handler, "https://elsewhere.example")
		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

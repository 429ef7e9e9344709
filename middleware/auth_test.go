package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func statusWith(apiKey, header string) int {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	RequireAPIKey(apiKey)(next).ServeHTTP(w, req)
	return w.Code
}

func TestRequireAPIKey(t *testing.T) {
	assert.Equal(t, http.StatusOK, statusWith("secret", "Bearer secret"))
	assert.Equal(t, http.StatusUnauthorized, statusWith("secret", ""))
	assert.Equal(t, http.StatusUnauthorized, statusWith("secret", "Basic secret"))
	assert.Equal(t, http.StatusForbidden, statusWith("secret", "Bearer wrong"))
	// No configured key means the endpoint is disabled outright.
	assert.Equal(t, http.StatusForbidden, statusWith("", "Bearer anything"))
}

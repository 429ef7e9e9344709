package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter int64

func (c fixedCounter) Count(context.Context) (int64, error) { return int64(c), nil }

func TestStatusHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	Handler(fixedCounter(7))(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var status Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, int64(7), status.ActiveSessions)
	assert.NotEmpty(t, status.Uptime)
	assert.Positive(t, status.Goroutines)
}

func TestStatusHandlerWithoutCounter(t *testing.T) {
	w := httptest.NewRecorder()
	Handler(nil)(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	var status Status
	require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	assert.Equal(t, int64(0), status.ActiveSessions)
}

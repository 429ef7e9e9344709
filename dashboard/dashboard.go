package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

// Status is the service snapshot returned to operators.
type Status struct {
	Uptime         string `json:"uptime"`
	Goroutines     int    `json:"goroutines"`
	ActiveSessions int64  `json:"active_sessions"`
	Status         string `json:"status"`
}

// SessionCounter reports how many shopper sessions currently exist.
type SessionCounter interface {
	Count(ctx context.Context) (int64, error)
}

var startedAt = time.Now()

// Handler returns an HTTP handler reporting the current service status.
func Handler(sessions SessionCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := Status{
			Uptime:     time.Since(startedAt).String(),
			Goroutines: runtime.NumGoroutine(),
			Status:     "ok",
		}
		if sessions != nil {
			if n, err := sessions.Count(r.Context()); err == nil {
				status.ActiveSessions = n
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

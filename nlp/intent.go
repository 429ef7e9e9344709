// Package nlp integrates the optional external intent-detection service.
// The dialogue never depends on it: any failure falls back to keyword
// matching.
package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"marketplace_bot/dialog"
)

var _ dialog.IntentDetector = (*Detector)(nil)

// Detector calls an HTTP intent service. It implements
// dialog.IntentDetector.
type Detector struct {
	url    string
	client *http.Client
}

// NewDetector creates a Detector against the given endpoint URL.
func NewDetector(url string) *Detector {
	return &Detector{
		url:    url,
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

type intentRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Language  string `json:"language"`
}

type intentResponse struct {
	Intent string `json:"intent"`
}

// DetectIntent posts the message to the intent service and returns the
// detected intent name, empty when the service is unsure.
func (d *Detector) DetectIntent(ctx context.Context, sessionID, text string, lang dialog.Language) (string, error) {
	body, err := json.Marshal(intentRequest{
		SessionID: sessionID,
		Text:      text,
		Language:  string(lang),
	})
	if err != nil {
		return "", fmt.Errorf("marshal intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call intent service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("intent service returned %s", resp.Status)
	}

	var out intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode intent response: %w", err)
	}
	return out.Intent, nil
}

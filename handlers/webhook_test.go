package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeManager struct {
	lastUser  string
	lastText  string
	lastMedia string
	reply     string
	err       error
}

func (f *fakeManager) HandleMessage(_ context.Context, userID, text, mediaURL string) (string, error) {
	f.lastUser = userID
	f.lastText = text
	f.lastMedia = mediaURL
	return f.reply, f.err
}

func postForm(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestWebhookRepliesWithXML(t *testing.T) {
	manager := &fakeManager{reply: "Olá! 👋"}
	handler := Webhook(manager)

	w := postForm(handler, url.Values{
		"From": {"+258840000001"},
		"Body": {"olá"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<Response><Message>Olá! 👋</Message></Response>")
	assert.Equal(t, "+258840000001", manager.lastUser)
	assert.Equal(t, "olá", manager.lastText)
	assert.Empty(t, manager.lastMedia)
}

func TestWebhookPassesMediaReference(t *testing.T) {
	manager := &fakeManager{reply: "Comprovativo recebido!"}

	postForm(Webhook(manager), url.Values{
		"From":      {"+258840000001"},
		"Body":      {""},
		"NumMedia":  {"1"},
		"MediaUrl0": {"https://cdn.example.com/proof.jpg"},
	})

	assert.Equal(t, "https://cdn.example.com/proof.jpg", manager.lastMedia)
}

func TestWebhookIgnoresMediaWhenNumMediaZero(t *testing.T) {
	manager := &fakeManager{reply: "ok"}

	postForm(Webhook(manager), url.Values{
		"From":      {"+258840000001"},
		"Body":      {"pago"},
		"NumMedia":  {"0"},
		"MediaUrl0": {"https://cdn.example.com/stale.jpg"},
	})

	assert.Empty(t, manager.lastMedia)
}

func TestWebhookSanitizesBody(t *testing.T) {
	manager := &fakeManager{reply: "ok"}

	postForm(Webhook(manager), url.Values{
		"From": {"+258840000001"},
		"Body": {"  <b>olá</b>  "},
	})

	assert.Equal(t, "olá", manager.lastText)
}

func TestWebhookRejectsMissingFrom(t *testing.T) {
	w := postForm(Webhook(&fakeManager{reply: "ok"}), url.Values{"Body": {"olá"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	w := httptest.NewRecorder()
	Webhook(&fakeManager{})(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWebhookFallsBackOnManagerError(t *testing.T) {
	manager := &fakeManager{err: assert.AnError}

	w := postForm(Webhook(manager), url.Values{
		"From": {"+258840000001"},
		"Body": {"olá"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tente novamente mais tarde")
}

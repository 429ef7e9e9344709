package handlers

import (
	"encoding/xml"
	"log"
	"net/http"
	"strconv"

	"marketplace_bot/dialog"
	"marketplace_bot/security"
)

// messagingResponse is the XML reply envelope the messaging channel
// expects back from the webhook.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

const fallbackReply = "Desculpe, ocorreu um erro. Por favor, tente novamente mais tarde."

// Webhook handles inbound messages from the messaging channel. The channel
// posts form-encoded fields: From (stable user identifier), Body (text) and
// NumMedia/MediaUrl0 (optional attached image, used as proof of payment).
func Webhook(manager dialog.DialogManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if err := r.ParseForm(); err != nil {
			log.Printf("❌ Bad webhook payload: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		from := r.PostFormValue("From")
		if from == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body := security.SanitizeText(r.PostFormValue("Body"))

		mediaURL := ""
		if numMedia, err := strconv.Atoi(r.PostFormValue("NumMedia")); err == nil && numMedia > 0 {
			mediaURL = r.PostFormValue("MediaUrl0")
		}

		log.Printf("📩 Message from %s: %q (media: %t)", from, body, mediaURL != "")

		reply, err := manager.HandleMessage(r.Context(), from, body, mediaURL)
		if err != nil {
			log.Printf("❌ Message handling failed for %s: %v", from, err)
			reply = fallbackReply
		}

		writeReply(w, reply)
	}
}

func writeReply(w http.ResponseWriter, reply string) {
	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(messagingResponse{Message: reply}); err != nil {
		log.Printf("❌ Reply encoding failed: %v", err)
	}
}

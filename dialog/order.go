package dialog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order is the record assembled when a shopper submits proof of payment.
// It goes to an OrderSink for the human payment-verification workflow; the
// conversation itself only ever refers back to the session.
type Order struct {
	Ref            string         `json:"ref"`
	UserID         string         `json:"user_id"`
	Category       string         `json:"category"`
	Establishment  string         `json:"establishment"`
	Lines          []CartLine     `json:"lines"`
	DeliveryMethod DeliveryMethod `json:"delivery_method"`
	DeliveryInfo   string         `json:"delivery_info,omitempty"`
	PickupTime     string         `json:"pickup_time,omitempty"`
	DeliveryFee    float64        `json:"delivery_fee"`
	Total          float64        `json:"total"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	ProofMediaURL  string         `json:"proof_media_url"`
	SubmittedAt    time.Time      `json:"submitted_at"`
}

// OrderSink receives submitted orders. Failures are logged, never surfaced
// to the shopper: the reply already promises manual confirmation.
type OrderSink interface {
	SubmitOrder(ctx context.Context, order Order) error
}

// newOrder snapshots a session into an Order with a fresh reference.
func newOrder(s *Session, fee, total float64, proofMediaURL string) Order {
	lines := make([]CartLine, len(s.Cart))
	copy(lines, s.Cart)
	return Order{
		Ref:            uuid.NewString(),
		UserID:         s.UserID,
		Category:       s.SelectedCategory,
		Establishment:  s.SelectedEstablishment,
		Lines:          lines,
		DeliveryMethod: s.DeliveryMethod,
		DeliveryInfo:   s.DeliveryInfo,
		PickupTime:     s.PickupTime,
		DeliveryFee:    fee,
		Total:          total,
		PaymentMethod:  s.PaymentMethod,
		ProofMediaURL:  proofMediaURL,
		SubmittedAt:    time.Now().UTC(),
	}
}

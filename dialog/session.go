// Package dialog implements the conversation state machine of the
// marketplace bot: per-user sessions, input resolution against the catalog
// and the turn-by-turn handlers that walk a shopper from category browsing
// to a submitted order.
package dialog

// Language selects the reply language of a session.
type Language string

const (
	LangPT Language = "pt"
	LangEN Language = "en"
)

// State is the conversation state of a session.
type State string

const (
	StateInitial               State = "initial"
	StateSelectingCategory     State = "selecting_category"
	StateShowingEstablishments State = "showing_establishments"
	StateShowingMenu           State = "showing_menu"
	StateAskingQuantity        State = "asking_quantity"
	StateAskingMoreItems       State = "asking_more_items"
	StateAskingDeliveryMethod  State = "asking_delivery_method"
	StateAskingDeliveryInfo    State = "asking_delivery_info"
	StateAskingPickupTime      State = "asking_pickup_time"
	StateShowingPaymentMethods State = "showing_payment_methods"
	StateShowingPaymentDetails State = "showing_payment_details"
	StateOrderCompleted        State = "order_completed"
)

// DeliveryMethod is how the shopper receives the order.
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "delivery"
	DeliveryPickup DeliveryMethod = "pickup"
)

// CartLine is one item added to the bag. Subtotal is fixed at append time
// as UnitPrice*Quantity.
type CartLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Session is the mutable conversation state of one user. Selections are
// stored as catalog names and re-resolved through the catalog each turn, so
// a session survives serialization to an external store.
type Session struct {
	UserID                string         `json:"user_id"`
	State                 State          `json:"state"`
	Language              Language       `json:"language"`
	SelectedCategory      string         `json:"selected_category,omitempty"`
	SelectedEstablishment string         `json:"selected_establishment,omitempty"`
	SelectedItem          string         `json:"selected_item,omitempty"`
	Cart                  []CartLine     `json:"cart,omitempty"`
	DeliveryMethod        DeliveryMethod `json:"delivery_method,omitempty"`
	DeliveryInfo          string         `json:"delivery_info,omitempty"`
	PickupTime            string         `json:"pickup_time,omitempty"`
	PaymentMethod         PaymentMethod  `json:"payment_method,omitempty"`
}

// NewSession creates a fresh session in the initial state, Portuguese by
// default.
func NewSession(userID string) *Session {
	return &Session{
		UserID:   userID,
		State:    StateInitial,
		Language: LangPT,
	}
}

// AddToCart appends a line for quantity units of an item.
func (s *Session) AddToCart(name string, unitPrice float64, quantity int) CartLine {
	line := CartLine{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Subtotal:  unitPrice * float64(quantity),
	}
	s.Cart = append(s.Cart, line)
	return line
}

// CartTotal recomputes the sum of line subtotals on every call.
func (s *Session) CartTotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.Subtotal
	}
	return total
}

// Reset returns the session to the initial state, keeping only the user ID
// and the chosen language.
func (s *Session) Reset() {
	s.State = StateInitial
	s.SelectedCategory = ""
	s.SelectedEstablishment = ""
	s.SelectedItem = ""
	s.Cart = nil
	s.DeliveryMethod = ""
	s.DeliveryInfo = ""
	s.PickupTime = ""
	s.PaymentMethod = ""
}

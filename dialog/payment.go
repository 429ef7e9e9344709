package dialog

// PaymentMethod is one of the mobile-money services accepted for payment.
type PaymentMethod string

const (
	PaymentEMola PaymentMethod = "E-Mola"
	PaymentMPesa PaymentMethod = "M-Pesa"
	PaymentMKesh PaymentMethod = "M-Kesh"
)

// PaymentDestination is the account the shopper transfers to for a given
// method.
type PaymentDestination struct {
	Name    string `yaml:"name" json:"name"`
	Contact string `yaml:"contact" json:"contact"`
}

// DefaultPaymentDestinations returns the built-in destination accounts per
// payment method.
func DefaultPaymentDestinations() map[PaymentMethod]PaymentDestination {
	return map[PaymentMethod]PaymentDestination{
		PaymentEMola: {Name: "Necuro TI", Contact: "872321309"},
		PaymentMPesa: {Name: "Necuro TI", Contact: "841234567"},
		PaymentMKesh: {Name: "Necuro TI", Contact: "861234567"},
	}
}

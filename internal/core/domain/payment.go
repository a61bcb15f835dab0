package domain

// Payment intent constants. Every intent is a USD card payment.
const (
	PaymentCurrency   = "usd"
	PaymentMethodCard = "card"
)

// PaymentIntentRequest is what the payment provider is asked to create.
type PaymentIntentRequest struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
	IdempotencyKey     string
}

// PaymentIntent is the subset of the provider's intent the API returns.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// AmountFromPrice converts a price in dollars to cents, truncating toward
// zero: 19.99 becomes 1998 because 19.99*100 is just below 1999.
func AmountFromPrice(price float64) int64 {
	return int64(price * 100)
}

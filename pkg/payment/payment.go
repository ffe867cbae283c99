package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Currency is fixed; there is no multi-currency support.
const Currency = "usd"

// CheckoutRequest describes a hosted checkout session to create.
type CheckoutRequest struct {
	TotalPrice  float64
	ProductName string
	Email       string
	Quantity    int64 // defaults to 1 when <= 0
	ProductID   string
	OrderID     string
}

// Session is the provider-side transaction record, as much of it as the
// service cares about.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	TransactionID string
	CustomerEmail string
	AmountTotal   int64 // smallest currency unit
	Currency      string
	Metadata      map[string]string
}

// Provider creates hosted checkout sessions and retrieves their terminal state.
type Provider interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}

// UnitAmount converts a decimal price into the provider's smallest currency
// unit, rounding half away from zero on the exact decimal value: 19.99 -> 1999,
// 5.005 -> 501, 19.995 -> 2000. Going through float64 arithmetic instead would
// turn 5.005*100 into 500.49999... and round the wrong way.
func UnitAmount(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

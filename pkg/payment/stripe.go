package payment

import (
	"context"
	"strconv"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// StripeProvider implements Provider on Stripe hosted checkout.
type StripeProvider struct {
	api     *client.API
	siteURL string
}

func NewStripeProvider(secretKey, siteURL string) *StripeProvider {
	return &StripeProvider{
		api:     client.New(secretKey, nil),
		siteURL: siteURL,
	}
}

// CreateSession builds a single-line-item hosted checkout session. The
// {CHECKOUT_SESSION_ID} placeholder in the success URL is substituted by
// Stripe, not by us.
func (p *StripeProvider) CreateSession(ctx context.Context, req CheckoutRequest) (*Session, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(Currency),
					UnitAmount: stripe.Int64(UnitAmount(req.TotalPrice)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(quantity),
			},
		},
		SuccessURL: stripe.String(p.siteURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.siteURL + "/payment-cancel"),
	}
	params.Context = ctx
	params.AddMetadata("productId", req.ProductID)
	params.AddMetadata("orderId", req.OrderID)
	params.AddMetadata("quantity", strconv.FormatInt(quantity, 10))

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

func (p *StripeProvider) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	sess, err := p.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, err
	}
	return fromStripeSession(sess), nil
}

func fromStripeSession(s *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	return out
}

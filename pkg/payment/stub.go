package payment

import (
	"context"
	"fmt"
	"sync"
)

// StubProvider is an in-memory provider for development and tests. Created
// sessions can be marked paid, and call counts are observable.
type StubProvider struct {
	mu       sync.Mutex
	sessions map[string]*Session
	seq      int

	CreateCalls   int
	RetrieveCalls int
}

func NewStubProvider() *StubProvider {
	return &StubProvider{sessions: make(map[string]*Session)}
}

func (p *StubProvider) CreateSession(ctx context.Context, req CheckoutRequest) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.CreateCalls++
	p.seq++
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	id := fmt.Sprintf("cs_stub_%d", p.seq)
	sess := &Session{
		ID:            id,
		URL:           "https://checkout.stub.local/" + id,
		PaymentStatus: "unpaid",
		TransactionID: fmt.Sprintf("pi_stub_%d", p.seq),
		CustomerEmail: req.Email,
		AmountTotal:   UnitAmount(req.TotalPrice) * quantity,
		Currency:      Currency,
		Metadata: map[string]string{
			"productId": req.ProductID,
			"orderId":   req.OrderID,
			"quantity":  fmt.Sprintf("%d", quantity),
		},
	}
	p.sessions[id] = sess
	return sess, nil
}

func (p *StubProvider) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RetrieveCalls++
	sess, ok := p.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no such session %q", id)
	}
	return sess, nil
}

// MarkPaid flips a stub session into its paid terminal state.
func (p *StubProvider) MarkPaid(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if sess, ok := p.sessions[id]; ok {
		sess.PaymentStatus = "paid"
	}
}

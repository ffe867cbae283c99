package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopline/internal/models"
	"shopline/pkg/payment"
)

type markPaidCall struct {
	productID     string
	email         string
	transactionID string
}

type fakeOrders struct {
	calls   []markPaidCall
	matched int64
}

func (f *fakeOrders) MarkPaid(ctx context.Context, productID, email, transactionID string, paidAt time.Time) (int64, error) {
	f.calls = append(f.calls, markPaidCall{productID, email, transactionID})
	return f.matched, nil
}

type fakePayments struct {
	records map[string]*models.Payment
}

func newFakePayments() *fakePayments {
	return &fakePayments{records: make(map[string]*models.Payment)}
}

func (f *fakePayments) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	_, ok := f.records[transactionID]
	return ok, nil
}

func (f *fakePayments) Insert(ctx context.Context, p *models.Payment) error {
	f.records[p.TransactionID] = p
	return nil
}

func newTestService() (*CheckoutService, *fakeOrders, *fakePayments, *payment.StubProvider) {
	orders := &fakeOrders{matched: 1}
	payments := newFakePayments()
	provider := payment.NewStubProvider()
	return NewCheckoutService(orders, payments, provider), orders, payments, provider
}

func TestCreateSessionValidation(t *testing.T) {
	cases := []struct {
		name string
		req  payment.CheckoutRequest
	}{
		{"missing totalPrice", payment.CheckoutRequest{ProductName: "Mug", Email: "a@b.com"}},
		{"missing productName", payment.CheckoutRequest{TotalPrice: 5, Email: "a@b.com"}},
		{"missing email", payment.CheckoutRequest{TotalPrice: 5, ProductName: "Mug"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, provider := newTestService()
			_, err := svc.CreateSession(context.Background(), tc.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if provider.CreateCalls != 0 {
				t.Errorf("provider called %d times, want 0", provider.CreateCalls)
			}
		})
	}
}

func TestCreateSessionReturnsURL(t *testing.T) {
	svc, _, _, _ := newTestService()
	sess, err := svc.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  19.99,
		ProductName: "Mug",
		Email:       "buyer@example.com",
		ProductID:   "p1",
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if sess.URL == "" {
		t.Error("session URL is empty")
	}
}

func TestReconcileRequiresSessionID(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Reconcile(context.Background(), "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestReconcilePaidSession(t *testing.T) {
	svc, orders, payments, provider := newTestService()
	sess, err := provider.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  19.99,
		ProductName: "Mug",
		Email:       "buyer@example.com",
		ProductID:   "p1",
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	provider.MarkPaid(sess.ID)

	result, err := svc.Reconcile(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if result.PaymentStatus != "paid" {
		t.Errorf("PaymentStatus = %q, want paid", result.PaymentStatus)
	}
	if result.Amount != 19.99 {
		t.Errorf("Amount = %v, want 19.99", result.Amount)
	}
	if len(orders.calls) != 1 {
		t.Fatalf("MarkPaid called %d times, want 1", len(orders.calls))
	}
	call := orders.calls[0]
	if call.productID != "p1" || call.email != "buyer@example.com" || call.transactionID != sess.TransactionID {
		t.Errorf("MarkPaid called with %+v", call)
	}
	if len(payments.records) != 1 {
		t.Fatalf("payment records = %d, want 1", len(payments.records))
	}
	p := payments.records[sess.TransactionID]
	if p == nil {
		t.Fatal("payment record missing for transaction id")
	}
	if p.Amount != 19.99 || p.CustomerEmail != "buyer@example.com" || p.ProductID != "p1" {
		t.Errorf("payment record = %+v", p)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	svc, orders, payments, provider := newTestService()
	sess, _ := provider.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  10,
		ProductName: "Mug",
		Email:       "buyer@example.com",
		ProductID:   "p1",
	})
	provider.MarkPaid(sess.ID)

	for i := 0; i < 2; i++ {
		if _, err := svc.Reconcile(context.Background(), sess.ID); err != nil {
			t.Fatalf("Reconcile #%d: %v", i+1, err)
		}
	}
	if len(payments.records) != 1 {
		t.Errorf("payment records = %d, want 1", len(payments.records))
	}
	// The order update is reapplied harmlessly; the target state is the same.
	if len(orders.calls) != 2 {
		t.Errorf("MarkPaid called %d times, want 2", len(orders.calls))
	}
}

func TestReconcileUnpaidSessionLeavesStoresAlone(t *testing.T) {
	svc, orders, payments, provider := newTestService()
	sess, _ := provider.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  10,
		ProductName: "Mug",
		Email:       "buyer@example.com",
	})

	result, err := svc.Reconcile(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if result.PaymentStatus != "unpaid" {
		t.Errorf("PaymentStatus = %q, want unpaid", result.PaymentStatus)
	}
	if len(orders.calls) != 0 {
		t.Errorf("MarkPaid called %d times, want 0", len(orders.calls))
	}
	if len(payments.records) != 0 {
		t.Errorf("payment records = %d, want 0", len(payments.records))
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shopline/internal/domain"
	"shopline/internal/models"
	"shopline/internal/repository"
	"shopline/pkg/payment"
)

// ErrValidation marks client errors; handlers map it to 400.
var ErrValidation = errors.New("validation")

// OrderStore is what reconciliation needs from the order collection.
type OrderStore interface {
	MarkPaid(ctx context.Context, productID, email, transactionID string, paidAt time.Time) (int64, error)
}

// PaymentStore is what reconciliation needs from the payment collection.
type PaymentStore interface {
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	Insert(ctx context.Context, p *models.Payment) error
}

// CheckoutService orchestrates hosted-session creation and the later
// reconciliation of a completed session into order and payment records.
type CheckoutService struct {
	orders   OrderStore
	payments PaymentStore
	provider payment.Provider
}

func NewCheckoutService(orders OrderStore, payments PaymentStore, provider payment.Provider) *CheckoutService {
	return &CheckoutService{orders: orders, payments: payments, provider: provider}
}

// CreateSession validates the request and creates a provider session. No local
// state is written; a retry simply creates another provider-side session.
func (s *CheckoutService) CreateSession(ctx context.Context, req payment.CheckoutRequest) (*payment.Session, error) {
	if req.TotalPrice <= 0 {
		return nil, fmt.Errorf("%w: totalPrice is required", ErrValidation)
	}
	if req.ProductName == "" {
		return nil, fmt.Errorf("%w: productName is required", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	return s.provider.CreateSession(ctx, req)
}

// ReconcileResult is reported to the caller whether or not the session was
// paid; callers must inspect PaymentStatus, not just the transport-level
// success flag.
type ReconcileResult struct {
	PaymentStatus string
	TransactionID string
	Amount        float64
}

// Reconcile fetches the session's terminal state and, if paid, records the
// outcome: the matching orders flip to paid and a payment record is inserted
// once per transaction. The two writes are independent best-effort steps; no
// rollback is attempted.
func (s *CheckoutService) Reconcile(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", ErrValidation)
	}
	sess, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	amount := float64(sess.AmountTotal) / 100
	if sess.PaymentStatus == domain.PaymentPaid {
		now := time.Now()
		matched, err := s.orders.MarkPaid(ctx, sess.Metadata["productId"], sess.CustomerEmail, sess.TransactionID, now)
		if err != nil {
			return nil, err
		}
		if matched != 1 {
			log.Printf("reconcile %s: order match by {productId,email} touched %d documents", sessionID, matched)
		}

		exists, err := s.payments.ExistsByTransactionID(ctx, sess.TransactionID)
		if err != nil {
			return nil, err
		}
		if !exists {
			p := &models.Payment{
				Amount:        amount,
				Currency:      sess.Currency,
				CustomerEmail: sess.CustomerEmail,
				ProductID:     sess.Metadata["productId"],
				TransactionID: sess.TransactionID,
				PaymentStatus: sess.PaymentStatus,
				PaidAt:        now,
			}
			if err := s.payments.Insert(ctx, p); err != nil && !repository.IsDuplicate(err) {
				return nil, err
			}
		}
	}

	return &ReconcileResult{
		PaymentStatus: sess.PaymentStatus,
		TransactionID: sess.TransactionID,
		Amount:        amount,
	}, nil
}

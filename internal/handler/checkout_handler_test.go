package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopline/internal/models"
	"shopline/internal/service"
	"shopline/internal/ws"
	"shopline/pkg/payment"

	"github.com/gin-gonic/gin"
)

type noopOrders struct{}

func (noopOrders) MarkPaid(ctx context.Context, productID, email, transactionID string, paidAt time.Time) (int64, error) {
	return 1, nil
}

type memPayments struct {
	records []*models.Payment
}

func (m *memPayments) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	for _, p := range m.records {
		if p.TransactionID == transactionID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPayments) Insert(ctx context.Context, p *models.Payment) error {
	m.records = append(m.records, p)
	return nil
}

func checkoutTestRouter(provider *payment.StubProvider) (*gin.Engine, *memPayments) {
	gin.SetMode(gin.TestMode)
	payments := &memPayments{}
	svc := service.NewCheckoutService(noopOrders{}, payments, provider)
	h := NewCheckoutHandler(svc, ws.NewHub())
	r := gin.New()
	r.POST("/create-checkout-session", h.CreateSession)
	r.PATCH("/payment-success", h.PaymentSuccess)
	return r, payments
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	bodies := []string{
		`{"productName":"Mug","email":"a@b.com"}`,
		`{"totalPrice":5,"email":"a@b.com"}`,
		`{"totalPrice":5,"productName":"Mug"}`,
	}
	for _, body := range bodies {
		provider := payment.NewStubProvider()
		r, _ := checkoutTestRouter(provider)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
		if provider.CreateCalls != 0 {
			t.Errorf("body %s: provider called %d times, want 0", body, provider.CreateCalls)
		}
	}
}

func TestCreateCheckoutSessionReturnsURL(t *testing.T) {
	provider := payment.NewStubProvider()
	r, _ := checkoutTestRouter(provider)

	body := `{"totalPrice":19.99,"productName":"Mug","email":"buyer@example.com","productId":"p1"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.URL == "" {
		t.Error("response url is empty")
	}
}

func TestPaymentSuccessRequiresSessionID(t *testing.T) {
	r, _ := checkoutTestRouter(payment.NewStubProvider())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/payment-success", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestPaymentSuccessSurfacesUnpaidStatus(t *testing.T) {
	provider := payment.NewStubProvider()
	r, payments := checkoutTestRouter(provider)

	sess, _ := provider.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  10,
		ProductName: "Mug",
		Email:       "buyer@example.com",
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/payment-success?session_id="+sess.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		Success       bool    `json:"success"`
		PaymentStatus string  `json:"paymentStatus"`
		Amount        float64 `json:"amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success {
		t.Error("success = false, want true even for unpaid sessions")
	}
	if out.PaymentStatus != "unpaid" {
		t.Errorf("paymentStatus = %q, want unpaid", out.PaymentStatus)
	}
	if len(payments.records) != 0 {
		t.Errorf("payment records = %d, want 0", len(payments.records))
	}
}

func TestPaymentSuccessRecordsPaidSession(t *testing.T) {
	provider := payment.NewStubProvider()
	r, payments := checkoutTestRouter(provider)

	sess, _ := provider.CreateSession(context.Background(), payment.CheckoutRequest{
		TotalPrice:  19.99,
		ProductName: "Mug",
		Email:       "buyer@example.com",
		ProductID:   "p1",
	})
	provider.MarkPaid(sess.ID)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/payment-success?session_id="+sess.ID, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("call %d status = %d: %s", i+1, w.Code, w.Body.String())
		}
	}
	if len(payments.records) != 1 {
		t.Errorf("payment records = %d, want 1", len(payments.records))
	}
}

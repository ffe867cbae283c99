package handler

import (
	"errors"
	"net/http"

	"shopline/internal/domain"
	"shopline/internal/service"
	"shopline/pkg/payment"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
	feed     Broadcaster
}

func NewCheckoutHandler(checkout *service.CheckoutService, feed Broadcaster) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, feed: feed}
}

// CreateSession responds with the hosted payment page URL.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var body struct {
		TotalPrice  float64 `json:"totalPrice"`
		ProductName string  `json:"productName"`
		Email       string  `json:"email"`
		Quantity    int64   `json:"quantity"`
		ProductID   string  `json:"productId"`
		OrderID     string  `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, err := h.checkout.CreateSession(c.Request.Context(), payment.CheckoutRequest{
		TotalPrice:  body.TotalPrice,
		ProductName: body.ProductName,
		Email:       body.Email,
		Quantity:    body.Quantity,
		ProductID:   body.ProductID,
		OrderID:     body.OrderID,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": sess.URL})
}

// PaymentSuccess reconciles a returned session. success:true reports only that
// reconciliation ran; callers must inspect paymentStatus.
func (h *CheckoutHandler) PaymentSuccess(c *gin.Context) {
	result, err := h.checkout.Reconcile(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.PaymentStatus == domain.PaymentPaid {
		h.feed.Broadcast(gin.H{
			"type":          "order.paid",
			"transactionId": result.TransactionID,
			"amount":        result.Amount,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"paymentStatus": result.PaymentStatus,
		"transactionId": result.TransactionID,
		"amount":        result.Amount,
	})
}

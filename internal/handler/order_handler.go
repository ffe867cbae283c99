package handler

import (
	"context"
	"net/http"
	"time"

	"shopline/internal/domain"
	"shopline/internal/models"

	"github.com/gin-gonic/gin"
)

// OrderStore is the slice of the order repository this handler needs.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	FindAll(ctx context.Context) ([]models.Order, error)
}

// Broadcaster pushes events to connected order-feed sockets. May be nil-free:
// a no-op hub is fine.
type Broadcaster interface {
	Broadcast(v interface{})
}

type OrderHandler struct {
	orders OrderStore
	feed   Broadcaster
}

func NewOrderHandler(orders OrderStore, feed Broadcaster) *OrderHandler {
	return &OrderHandler{orders: orders, feed: feed}
}

// Create accepts an unauthenticated order submission. Whatever payment status
// the client sends is discarded; orders always start pending.
func (h *OrderHandler) Create(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and email are required"})
		return
	}

	order.PaymentStatus = domain.PaymentPending
	order.TransactionID = ""
	order.PaidAt = nil
	order.CreatedAt = time.Now()

	if err := h.orders.Insert(c.Request.Context(), &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.feed.Broadcast(gin.H{"type": "order.created", "order": order})
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the durable record of a completed provider session. TransactionID
// carries a unique index so a session can never be recorded twice.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	CustomerEmail string             `bson:"customerEmail" json:"customerEmail"`
	ProductID     string             `bson:"productId" json:"productId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID     string             `bson:"productId" json:"productId" binding:"required"`
	Email         string             `bson:"email" json:"email" binding:"required"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

package repository

import (
	"context"

	"shopline/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

func (r *PaymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"transactionId": transactionID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert writes a payment record. With the unique transactionId index in
// place, a concurrent duplicate surfaces as a duplicate-key error, which
// callers treat as already-recorded.
func (r *PaymentRepository) Insert(ctx context.Context, p *models.Payment) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// IsDuplicate reports whether an insert failed because the transaction was
// already recorded.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

package repository

import (
	"context"
	"time"

	"shopline/internal/domain"
	"shopline/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection("orders")}
}

func (r *OrderRepository) Insert(ctx context.Context, o *models.Order) error {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// MarkPaid flips every order matching {productId, email} to paid and stamps the
// transaction id. Matching is by attribute equality, not order id, so zero or
// several documents may be touched; the caller gets the modified count.
func (r *OrderRepository) MarkPaid(ctx context.Context, productID, email, transactionID string, paidAt time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"productId": productID, "email": email},
		bson.M{"$set": bson.M{
			"paymentStatus": domain.PaymentPaid,
			"transactionId": transactionID,
			"paidAt":        paidAt,
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

package database

import (
	"context"
	"time"

	"shopline/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo holds the long-lived client and database handle. All repositories are
// built from it; there are no package-level collection globals.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{Client: client, DB: client.Database(cfg.Database)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *Mongo) Users() *mongo.Collection    { return m.DB.Collection("users") }
func (m *Mongo) Products() *mongo.Collection { return m.DB.Collection("products") }
func (m *Mongo) Orders() *mongo.Collection   { return m.DB.Collection("orders") }
func (m *Mongo) Payments() *mongo.Collection { return m.DB.Collection("payments") }

// EnsureIndexes creates the unique indexes the service relies on: one user per
// email, and at most one payment record per provider transaction.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = m.Payments().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

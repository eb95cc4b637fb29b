package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const emailIndexName = "email_unique"

// userCollection is the subset of collection operations the repository relies on.
type userCollection interface {
	InsertOne(ctx context.Context, doc any) (any, error)
	FindOne(ctx context.Context, filter any, out any) error
	EnsureEmailIndex(ctx context.Context) error
}

type client interface {
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

type driverCollection struct {
	coll *mongo.Collection
}

func (c driverCollection) InsertOne(ctx context.Context, doc any) (any, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func (c driverCollection) FindOne(ctx context.Context, filter any, out any) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

func (c driverCollection) EnsureEmailIndex(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	return err
}

type driverClient struct {
	c *mongo.Client
}

func (c driverClient) Ping(ctx context.Context) error {
	return c.c.Ping(ctx, readpref.Primary())
}

func (c driverClient) Disconnect(ctx context.Context) error {
	return c.c.Disconnect(ctx)
}

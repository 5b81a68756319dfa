package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs fn atomically when the deployment supports it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Transactional reports whether writes inside fn roll back on error.
	Transactional() bool
}

// MongoTransactor runs fn inside a multi-document transaction. Requires a
// replica set or sharded cluster.
type MongoTransactor struct {
	Client *mongo.Client
}

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := t.Client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (t *MongoTransactor) Transactional() bool { return true }

// DirectTransactor runs fn without a session. Callers compensate on failure.
type DirectTransactor struct{}

func (DirectTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (DirectTransactor) Transactional() bool { return false }

package principalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPrincipalRepo implements PrincipalRepository over one collection.
type MongoPrincipalRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo stores admins in the "admins" collection.
func NewMongoAdminRepo(db *mongo.Database) PrincipalRepository {
	return &MongoPrincipalRepo{coll: db.Collection("admins")}
}

// NewMongoPartnerRepo stores partners in the "partners" collection.
func NewMongoPartnerRepo(db *mongo.Database) PrincipalRepository {
	return &MongoPrincipalRepo{coll: db.Collection("partners")}
}

func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoPrincipalRepo) GetByID(ctx context.Context, id string, projection bson.M) (*models.Principal, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var p models.Principal
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: principal %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch principal with id %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPrincipalRepo) GetByUsername(ctx context.Context, username string) (*models.Principal, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var p models.Principal
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch principal %s: %w", username, err)
	}
	return &p, nil
}

func (r *MongoPrincipalRepo) Create(ctx context.Context, p *models.Principal) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: username or email already registered", models.ErrConflict)
		}
		return fmt.Errorf("failed to create principal: %w", err)
	}
	return nil
}

func (r *MongoPrincipalRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"token_hash": tokenHash, "last_login": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to store token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: principal %s", models.ErrNotFound, id)
	}
	return nil
}

func (r *MongoPrincipalRepo) ClearTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "token_hash": tokenHash},
		bson.M{"$unset": bson.M{"token_hash": ""}},
	)
	if err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}
	return nil
}

// EnsureIndexes creates indexes for fields used in lookups.
func (r *MongoPrincipalRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", r.coll.Name(), err)
	}
	return nil
}

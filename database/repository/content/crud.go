package contentRepo

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

func (r *mongoContentRepo[T, P]) List(ctx context.Context, publishedOnly bool) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(r.sort))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

func (r *mongoContentRepo[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, "id", id)
}

func (r *mongoContentRepo[T, P]) FindOne(ctx context.Context, field string, value interface{}) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := new(T)
	err := r.coll.FindOne(ctx, bson.M{field: value}, options.FindOne().SetSort(r.sort)).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s %s=%v", models.ErrNotFound, r.coll.Name(), field, value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", r.coll.Name(), err)
	}
	return doc, nil
}

func (r *mongoContentRepo[T, P]) Create(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: duplicate %s record", models.ErrConflict, r.coll.Name())
		}
		return fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *mongoContentRepo[T, P]) Replace(ctx context.Context, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	id := P(doc).Meta().ID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: duplicate %s record", models.ErrConflict, r.coll.Name())
		}
		return fmt.Errorf("failed to update %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s %s", models.ErrNotFound, r.coll.Name(), id)
	}
	return nil
}

func (r *mongoContentRepo[T, P]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s %s", models.ErrNotFound, r.coll.Name(), id)
	}
	return nil
}

func (r *mongoContentRepo[T, P]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	idx := append([]mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
	}, r.indexes...)
	if _, err := r.coll.Indexes().CreateMany(ctx, idx); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", r.coll.Name(), err)
	}
	return nil
}

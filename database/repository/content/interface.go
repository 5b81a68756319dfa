package contentRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentPtr constrains P to be *T and a content document.
type ContentPtr[T any] interface {
	*T
	models.ContentDoc
}

// ContentRepository is the storage contract shared by all admin-managed
// content collections (blogs, faqs, testimonials, packages, templates).
type ContentRepository[T any] interface {
	List(ctx context.Context, publishedOnly bool) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	// FindOne returns the first record with field == value, sorted by the
	// repository's default order.
	FindOne(ctx context.Context, field string, value interface{}) (*T, error)
	Create(ctx context.Context, doc *T) error
	Replace(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoContentRepo[T any, P ContentPtr[T]] struct {
	coll    *mongo.Collection
	sort    bson.D
	indexes []mongo.IndexModel
}

// NewMongoContentRepo builds a repository over collection. sort is the
// default list order and extra holds indexes beyond the unique id.
func NewMongoContentRepo[T any, P ContentPtr[T]](db *mongo.Database, collection string, sort bson.D, extra ...mongo.IndexModel) ContentRepository[T] {
	return &mongoContentRepo[T, P]{
		coll:    db.Collection(collection),
		sort:    sort,
		indexes: extra,
	}
}

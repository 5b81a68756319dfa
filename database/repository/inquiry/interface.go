package inquiryRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// InquiryRepository stores contact-form leads.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	List(ctx context.Context, skip, limit int64) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, from, to models.InquiryStatus) (*models.Inquiry, error)
	CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

func NewMongoInquiryRepo(db *mongo.Database) InquiryRepository {
	return &mongoInquiryRepo{coll: db.Collection("contact_inquiries")}
}

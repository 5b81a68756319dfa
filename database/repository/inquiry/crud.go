package inquiryRepo

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

func (r *mongoInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("insert inquiry failed: %w", err)
	}
	return nil
}

func (r *mongoInquiryRepo) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var inq models.Inquiry
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inq)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: inquiry %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inquiry: %w", err)
	}
	return &inq, nil
}

func (r *mongoInquiryRepo) List(ctx context.Context, skip, limit int64) ([]models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("error decoding inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *mongoInquiryRepo) UpdateStatus(ctx context.Context, id string, from, to models.InquiryStatus) (*models.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var inq models.Inquiry
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&inq)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("%w: inquiry %s is no longer %s", models.ErrInvalidTransition, id, from)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}
	return &inq, nil
}

func (r *mongoInquiryRepo) CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate inquiry counts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status models.InquiryStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	counts := map[models.InquiryStatus]int64{
		models.InquiryNew:       0,
		models.InquiryContacted: 0,
		models.InquiryClosed:    0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *mongoInquiryRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
	})
	if err != nil {
		return fmt.Errorf("failed to create inquiry indexes: %w", err)
	}
	return nil
}

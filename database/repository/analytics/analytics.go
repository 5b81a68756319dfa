package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalyticsRepository interface {
	Track(ctx context.Context, ev *models.AnalyticsEvent) error
	// Summary counts events by type. Zero bounds are open.
	Summary(ctx context.Context, start, end time.Time) (*models.AnalyticsSummary, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAnalyticsRepo struct {
	coll *mongo.Collection
}

func NewMongoAnalyticsRepo(db *mongo.Database) AnalyticsRepository {
	return &mongoAnalyticsRepo{coll: db.Collection("analytics")}
}

func (r *mongoAnalyticsRepo) Track(ctx context.Context, ev *models.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("failed to record analytics event: %w", err)
	}
	return nil
}

func (r *mongoAnalyticsRepo) Summary(ctx context.Context, start, end time.Time) (*models.AnalyticsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	window := bson.M{}
	if !start.IsZero() {
		window["$gte"] = start
	}
	if !end.IsZero() {
		window["$lte"] = end
	}
	if len(window) > 0 {
		match["created_at"] = window
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$event_type", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("analytics aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		EventType string `bson:"_id"`
		Count     int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}

	summary := &models.AnalyticsSummary{ByType: map[string]int64{}}
	for _, row := range rows {
		summary.ByType[row.EventType] = row.Count
		summary.TotalEvents += row.Count
	}
	return summary, nil
}

func (r *mongoAnalyticsRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
		{Keys: bson.D{{Key: "event_type", Value: 1}}, Options: options.Index().SetName("event_type_idx")},
	})
	if err != nil {
		return fmt.Errorf("failed to create analytics indexes: %w", err)
	}
	return nil
}

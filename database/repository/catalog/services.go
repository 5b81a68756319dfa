package catalogRepo

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

func (r *mongoCatalogRepo) FindService(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"services.$": 1})
	var stage models.Stage
	err := r.coll.FindOne(ctx, bson.M{"services.service_id": serviceID}, opts).Decode(&stage)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && len(stage.Services) == 0) {
		return nil, fmt.Errorf("%w: service %s", models.ErrNotFound, serviceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return &stage.Services[0], nil
}

func (r *mongoCatalogRepo) AddService(ctx context.Context, stageID int, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": stageID, "services.service_id": bson.M{"$ne": svc.ServiceID}}
	update := bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, err := r.GetStage(ctx, stageID); err != nil {
			return err
		}
		return fmt.Errorf("%w: service %s already exists in stage %d", models.ErrConflict, svc.ServiceID, stageID)
	}
	return nil
}

func (r *mongoCatalogRepo) ReplaceService(ctx context.Context, stageID int, svc models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": stageID, "services.service_id": svc.ServiceID},
		bson.M{"$set": bson.M{"services.$": svc, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: service %s in stage %d", models.ErrNotFound, svc.ServiceID, stageID)
	}
	return nil
}

func (r *mongoCatalogRepo) RemoveService(ctx context.Context, stageID int, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": stageID, "services.service_id": serviceID},
		bson.M{
			"$pull": bson.M{"services": bson.M{"service_id": serviceID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to remove service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: service %s in stage %d", models.ErrNotFound, serviceID, stageID)
	}
	return nil
}

func (r *mongoCatalogRepo) CountServices(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$services", bson.A{}}}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("decode error: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

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

func (r *mongoCatalogRepo) ListStages(ctx context.Context) ([]models.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stages: %w", err)
	}
	defer cursor.Close(ctx)

	stages := []models.Stage{}
	if err := cursor.All(ctx, &stages); err != nil {
		return nil, fmt.Errorf("error decoding stages: %w", err)
	}
	return stages, nil
}

func (r *mongoCatalogRepo) GetStage(ctx context.Context, id int) (*models.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var stage models.Stage
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stage)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stage: %w", err)
	}
	return &stage, nil
}

func (r *mongoCatalogRepo) CreateStage(ctx context.Context, stage *models.Stage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if stage.Services == nil {
		stage.Services = []models.Service{}
	}
	if _, err := r.coll.InsertOne(ctx, stage); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: stage %d already exists", models.ErrConflict, stage.ID)
		}
		return fmt.Errorf("failed to insert stage: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) UpdateStage(ctx context.Context, id int, upd models.StageUpdate) (*models.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Subtitle != nil {
		set["subtitle"] = *upd.Subtitle
	}
	if upd.Phase != nil {
		set["phase"] = *upd.Phase
	}

	var stage models.Stage
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&stage)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return &stage, nil
}

func (r *mongoCatalogRepo) DeleteStage(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: stage %d", models.ErrNotFound, id)
	}
	return nil
}

func (r *mongoCatalogRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		{Keys: bson.D{{Key: "services.service_id", Value: 1}}, Options: options.Index().SetName("service_id_idx")},
	})
	if err != nil {
		return fmt.Errorf("failed to create stage indexes: %w", err)
	}
	return nil
}

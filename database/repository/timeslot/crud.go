// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hdmonks/models"
)

func (r *mongoTimeSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: a slot already exists on %s at %s", models.ErrConflict, slot.Date, slot.Time)
		}
		return fmt.Errorf("failed to insert timeslot: %w", err)
	}
	return nil
}

func (r *mongoTimeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.TimeSlot
	err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslot: %w", err)
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepo) ListAll(ctx context.Context) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoTimeSlotRepo) UpdateIfAvailable(ctx context.Context, slotID string, req models.TimeSlotRequest) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "is_available": true}
	update := bson.M{"$set": bson.M{
		"date":             req.Date,
		"time":             req.Time,
		"duration_minutes": req.DurationMinutes,
		"updated_at":       time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.TimeSlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	switch {
	case err == nil:
		return &slot, nil
	case mongo.IsDuplicateKeyError(err):
		return nil, fmt.Errorf("%w: a slot already exists on %s at %s", models.ErrConflict, req.Date, req.Time)
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, r.unavailableReason(ctx, slotID)
	default:
		return nil, fmt.Errorf("failed to update timeslot: %w", err)
	}
}

func (r *mongoTimeSlotRepo) DeleteIfAvailable(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID, "is_available": true})
	if err != nil {
		return fmt.Errorf("failed to delete timeslot: %w", err)
	}
	if res.DeletedCount == 0 {
		return r.unavailableReason(ctx, slotID)
	}
	return nil
}

// unavailableReason tells a missing slot apart from a claimed one after a
// conditional write matched nothing.
func (r *mongoTimeSlotRepo) unavailableReason(ctx context.Context, slotID string) error {
	n, err := r.coll.CountDocuments(ctx, bson.M{"id": slotID})
	if err != nil {
		return fmt.Errorf("failed to inspect timeslot: %w", err)
	}
	if n == 0 {
		return models.ErrSlotNotFound
	}
	return models.ErrSlotBooked
}

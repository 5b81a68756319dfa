package timeslotRepo

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

func (repo *mongoTimeSlotRepo) Claim(ctx context.Context, slotID, bookingID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":           slotID,
		"is_available": true,
	}
	update := bson.M{
		"$set": bson.M{
			"is_available": false,
			"booking_id":   bookingID,
			"updated_at":   time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.TimeSlot
	err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		reason := repo.unavailableReason(ctx, slotID)
		if errors.Is(reason, models.ErrSlotBooked) {
			return nil, models.ErrSlotAlreadyTaken
		}
		return nil, reason
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim timeslot: %w", err)
	}
	return &slot, nil
}

func (repo *mongoTimeSlotRepo) Release(ctx context.Context, slotID, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":           slotID,
		"is_available": false,
		"booking_id":   bookingID,
	}
	update := bson.M{
		"$set":   bson.M{"is_available": true, "updated_at": time.Now().UTC()},
		"$unset": bson.M{"booking_id": ""},
	}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release timeslot: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("release of timeslot %s matched nothing (claimed by another booking or missing)", slotID)
	}
	return nil
}

// File: database/repository/timeslot/queries.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListAvailable returns open slots ordered by date then time. An empty date
// returns every open slot.
func (repo *mongoTimeSlotRepo) ListAvailable(ctx context.Context, date string) ([]models.TimeSlot, error) {
	filter := bson.M{"is_available": true}
	if date != "" {
		filter["date"] = date
	}
	return repo.find(ctx, filter)
}

func (repo *mongoTimeSlotRepo) find(ctx context.Context, filter bson.M) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	slots := []models.TimeSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding timeslots: %w", err)
	}
	return slots, nil
}

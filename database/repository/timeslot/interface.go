// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, slot *models.TimeSlot) error
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	ListAll(ctx context.Context) ([]models.TimeSlot, error)
	ListAvailable(ctx context.Context, date string) ([]models.TimeSlot, error)
	UpdateIfAvailable(ctx context.Context, slotID string, req models.TimeSlotRequest) (*models.TimeSlot, error)
	DeleteIfAvailable(ctx context.Context, slotID string) error
	// Claim flips is_available from true to false in one conditional update
	// and returns the claimed slot.
	Claim(ctx context.Context, slotID, bookingID string) (*models.TimeSlot, error)
	// Release undoes a Claim made by bookingID.
	Release(ctx context.Context, slotID, bookingID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo(db *mongo.Database) TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: db.Collection("timeslots"),
	}
}

package bookingRepo

import (
	"context"

	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, skip, limit int64) ([]models.Booking, error)
	// UpdateStatus moves a booking from one status to another only if it is
	// still in the from status.
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error)
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}

package booking

import (
	"context"

	"hdmonks/database"
	"hdmonks/database/repository"
	"hdmonks/models"
	"hdmonks/services/notification"
)

// BookingService owns the timeslot/booking pair.
type BookingService interface {
	// Reserve claims the slot and records the booking. A notification
	// failure is reported in ReservationResult.Warning, never as an error.
	Reserve(ctx context.Context, req models.BookingRequest) (*models.ReservationResult, error)
	ListBookings(ctx context.Context, skip, limit int64) ([]models.Booking, error)
	SetStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)

	ListAvailableSlots(ctx context.Context, date string) ([]models.TimeSlot, error)
	ListAllSlots(ctx context.Context) ([]models.TimeSlot, error)
	CreateSlot(ctx context.Context, req models.TimeSlotRequest) (*models.TimeSlot, error)
	UpdateSlot(ctx context.Context, id string, req models.TimeSlotRequest) (*models.TimeSlot, error)
	DeleteSlot(ctx context.Context, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Slots    repository.TimeSlotRepository
	Bookings repository.BookingRepository
	Tx       database.Transactor
	Notifier notification.Notifier
}

func NewBookingService(
	slots repository.TimeSlotRepository,
	bookings repository.BookingRepository,
	tx database.Transactor,
	notifier notification.Notifier,
) *DefaultBookingService {
	if tx == nil {
		tx = database.DirectTransactor{}
	}
	return &DefaultBookingService{
		Slots:    slots,
		Bookings: bookings,
		Tx:       tx,
		Notifier: notifier,
	}
}

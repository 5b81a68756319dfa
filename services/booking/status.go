package booking

import (
	"context"
	"errors"
	"fmt"

	"hdmonks/models"
)

func (s *DefaultBookingService) ListBookings(ctx context.Context, skip, limit int64) ([]models.Booking, error) {
	return s.Bookings.List(ctx, skip, limit)
}

// SetStatus applies one step of the booking workflow. Re-applying the
// current status returns the record unchanged.
func (s *DefaultBookingService) SetStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	current, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status.Terminal() {
		return nil, fmt.Errorf("%w: booking is already %s", models.ErrInvalidTransition, current.Status)
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: booking cannot move from %s to %s", models.ErrInvalidTransition, current.Status, status)
	}

	updated, err := s.Bookings.UpdateStatus(ctx, id, current.Status, status)
	if errors.Is(err, models.ErrInvalidTransition) {
		// Another operator moved it first.
		if fresh, gerr := s.Bookings.GetByID(ctx, id); gerr == nil && fresh.Status == status {
			return fresh, nil
		}
	}
	return updated, err
}

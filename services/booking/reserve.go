package booking

import (
	"context"
	"time"

	"hdmonks/models"
	"hdmonks/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationWarning is returned in the envelope message when the booking
// succeeded but its confirmation email did not go out.
const NotificationWarning = "Booking confirmed, but the confirmation email could not be sent."

func (s *DefaultBookingService) Reserve(ctx context.Context, req models.BookingRequest) (*models.ReservationResult, error) {
	logger := utils.GetLogger()

	req.Normalize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	bookingID := uuid.New().String()
	var booking *models.Booking

	err := s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		slot, err := s.Slots.Claim(ctx, req.TimeSlotID, bookingID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		b := &models.Booking{
			ID:              bookingID,
			TimeSlotID:      slot.ID,
			Date:            slot.Date,
			Time:            slot.Time,
			FullName:        req.FullName,
			Email:           req.Email,
			Phone:           req.Phone,
			BusinessType:    req.BusinessType,
			ServiceInterest: req.ServiceInterest,
			Message:         req.Message,
			Status:          models.BookingConfirmed,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.Bookings.Create(ctx, b); err != nil {
			if !s.Tx.Transactional() {
				if rerr := s.Slots.Release(ctx, slot.ID, bookingID); rerr != nil {
					logger.Error("Reserve: failed to release slot after booking insert failed",
						zap.String("slotID", slot.ID), zap.String("bookingID", bookingID), zap.Error(rerr))
				}
			}
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Booking confirmed",
		zap.String("bookingID", booking.ID), zap.String("slotID", booking.TimeSlotID),
		zap.String("date", booking.Date), zap.String("time", booking.Time))

	result := &models.ReservationResult{Booking: booking}
	if s.Notifier != nil {
		if err := s.Notifier.NotifyBooking(ctx, *booking); err != nil {
			logger.Warn("Reserve: confirmation notification failed", zap.String("bookingID", booking.ID), zap.Error(err))
			result.Warning = NotificationWarning
		}
	}
	return result, nil
}

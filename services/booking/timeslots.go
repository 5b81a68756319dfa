package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hdmonks/models"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func (s *DefaultBookingService) ListAvailableSlots(ctx context.Context, date string) ([]models.TimeSlot, error) {
	date = strings.TrimSpace(date)
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
		}
	}
	return s.Slots.ListAvailable(ctx, date)
}

func (s *DefaultBookingService) ListAllSlots(ctx context.Context) ([]models.TimeSlot, error) {
	return s.Slots.ListAll(ctx)
}

func (s *DefaultBookingService) CreateSlot(ctx context.Context, req models.TimeSlotRequest) (*models.TimeSlot, error) {
	if err := normalizeSlotRequest(&req); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	slot := &models.TimeSlot{
		ID:              uuid.New().String(),
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		IsAvailable:     true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// UpdateSlot edits a slot that has not been booked.
func (s *DefaultBookingService) UpdateSlot(ctx context.Context, id string, req models.TimeSlotRequest) (*models.TimeSlot, error) {
	if err := normalizeSlotRequest(&req); err != nil {
		return nil, err
	}
	return s.Slots.UpdateIfAvailable(ctx, id, req)
}

// DeleteSlot removes a slot that has not been booked. Claimed slots return
// models.ErrSlotBooked.
func (s *DefaultBookingService) DeleteSlot(ctx context.Context, id string) error {
	return s.Slots.DeleteIfAvailable(ctx, id)
}

// normalizeSlotRequest canonicalises date and time so (date, time)
// uniqueness holds across spellings like "9:00" and "09:00".
func normalizeSlotRequest(req *models.TimeSlotRequest) error {
	d, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrValidation)
	}
	t, err := time.Parse(timeLayout, padHour(strings.TrimSpace(req.Time)))
	if err != nil {
		return fmt.Errorf("%w: time must be HH:MM", models.ErrValidation)
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = models.DefaultSlotDuration
	}
	if req.DurationMinutes < 0 || req.DurationMinutes > 24*60 {
		return fmt.Errorf("%w: duration_minutes must be between 1 and 1440", models.ErrValidation)
	}
	req.Date = d.Format(dateLayout)
	req.Time = t.Format(timeLayout)
	return nil
}

func padHour(hhmm string) string {
	if i := strings.Index(hhmm, ":"); i == 1 {
		return "0" + hhmm
	}
	return hhmm
}

// Package memrepo holds in-memory repositories with the same conditional
// write semantics as the Mongo ones. Service and handler tests run on them.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hdmonks/models"
)

type TimeSlots struct {
	mu    sync.Mutex
	slots map[string]models.TimeSlot
}

func NewTimeSlots(seed ...models.TimeSlot) *TimeSlots {
	r := &TimeSlots{slots: map[string]models.TimeSlot{}}
	for _, s := range seed {
		r.slots[s.ID] = s
	}
	return r
}

func (r *TimeSlots) Create(_ context.Context, slot *models.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.slots {
		if s.ID == slot.ID || (s.Date == slot.Date && s.Time == slot.Time) {
			return fmt.Errorf("%w: a slot already exists on %s at %s", models.ErrConflict, slot.Date, slot.Time)
		}
	}
	r.slots[slot.ID] = *slot
	return nil
}

func (r *TimeSlots) GetByID(_ context.Context, id string) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, models.ErrSlotNotFound
	}
	return &s, nil
}

func (r *TimeSlots) ListAll(_ context.Context) ([]models.TimeSlot, error) {
	return r.list(func(models.TimeSlot) bool { return true }), nil
}

func (r *TimeSlots) ListAvailable(_ context.Context, date string) ([]models.TimeSlot, error) {
	return r.list(func(s models.TimeSlot) bool {
		return s.IsAvailable && (date == "" || s.Date == date)
	}), nil
}

func (r *TimeSlots) list(keep func(models.TimeSlot) bool) []models.TimeSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.TimeSlot{}
	for _, s := range r.slots {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r *TimeSlots) UpdateIfAvailable(_ context.Context, id string, req models.TimeSlotRequest) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, models.ErrSlotNotFound
	}
	if !s.IsAvailable {
		return nil, models.ErrSlotBooked
	}
	for _, other := range r.slots {
		if other.ID != id && other.Date == req.Date && other.Time == req.Time {
			return nil, fmt.Errorf("%w: a slot already exists on %s at %s", models.ErrConflict, req.Date, req.Time)
		}
	}
	s.Date, s.Time, s.DurationMinutes, s.UpdatedAt = req.Date, req.Time, req.DurationMinutes, time.Now().UTC()
	r.slots[id] = s
	return &s, nil
}

func (r *TimeSlots) DeleteIfAvailable(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return models.ErrSlotNotFound
	}
	if !s.IsAvailable {
		return models.ErrSlotBooked
	}
	delete(r.slots, id)
	return nil
}

func (r *TimeSlots) Claim(_ context.Context, id, bookingID string) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, models.ErrSlotNotFound
	}
	if !s.IsAvailable {
		return nil, models.ErrSlotAlreadyTaken
	}
	s.IsAvailable, s.BookingID, s.UpdatedAt = false, bookingID, time.Now().UTC()
	r.slots[id] = s
	return &s, nil
}

func (r *TimeSlots) Release(_ context.Context, id, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok || s.IsAvailable || s.BookingID != bookingID {
		return fmt.Errorf("release of timeslot %s matched nothing", id)
	}
	s.IsAvailable, s.BookingID = true, ""
	r.slots[id] = s
	return nil
}

func (r *TimeSlots) EnsureIndexes(context.Context) error { return nil }

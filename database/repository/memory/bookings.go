package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hdmonks/models"
)

type Bookings struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	// FailCreate makes the next Create calls fail, for compensation tests.
	FailCreate error
}

func NewBookings() *Bookings {
	return &Bookings{bookings: map[string]models.Booking{}}
}

func (r *Bookings) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return r.FailCreate
	}
	for _, existing := range r.bookings {
		if existing.TimeSlotID == b.TimeSlotID {
			return fmt.Errorf("%w: slot %s already has a booking", models.ErrSlotAlreadyTaken, b.TimeSlotID)
		}
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *Bookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s", models.ErrNotFound, id)
	}
	return &b, nil
}

func (r *Bookings) List(_ context.Context, skip, limit int64) ([]models.Booking, error) {
	r.mu.Lock()
	all := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		all = append(all, b)
	}
	r.mu.Unlock()
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, skip, limit), nil
}

func (r *Bookings) UpdateStatus(_ context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s", models.ErrNotFound, id)
	}
	if b.Status != from {
		return nil, fmt.Errorf("%w: booking %s is no longer %s", models.ErrInvalidTransition, id, from)
	}
	b.Status, b.UpdatedAt = to, time.Now().UTC()
	r.bookings[id] = b
	return &b, nil
}

func (r *Bookings) CountByStatus(_ context.Context) (map[models.BookingStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.BookingStatus]int64{}
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (r *Bookings) EnsureIndexes(context.Context) error { return nil }

func page[T any](all []T, skip, limit int64) []T {
	if skip >= int64(len(all)) {
		return []T{}
	}
	all = all[skip:]
	if limit > 0 && limit < int64(len(all)) {
		all = all[:limit]
	}
	return all
}

package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hdmonks/database"
	memrepo "hdmonks/database/repository/memory"
	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyBooking(ctx context.Context, b models.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockNotifier) NotifyInquiry(ctx context.Context, i models.Inquiry) error {
	return m.Called(ctx, i).Error(0)
}

func exampleSlot() models.TimeSlot {
	return models.TimeSlot{ID: "slot-1", Date: "2025-06-01", Time: "10:00", DurationMinutes: 30, IsAvailable: true}
}

func bookingRequest(slotID string) models.BookingRequest {
	return models.BookingRequest{
		FullName:     "Asha Rao",
		Email:        "asha@example.com",
		Phone:        "+91-9000000000",
		BusinessType: "startup",
		TimeSlotID:   slotID,
	}
}

func newService(t *testing.T, notifier *mockNotifier, seed ...models.TimeSlot) (*DefaultBookingService, *memrepo.TimeSlots, *memrepo.Bookings) {
	t.Helper()
	slots := memrepo.NewTimeSlots(seed...)
	bookings := memrepo.NewBookings()
	svc := NewBookingService(slots, bookings, database.DirectTransactor{}, nil)
	if notifier != nil {
		svc.Notifier = notifier
	}
	return svc, slots, bookings
}

func TestReserve_ExampleSlot(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("NotifyBooking", mock.Anything, mock.AnythingOfType("models.Booking")).Return(nil).Once()
	svc, slots, _ := newService(t, notifier, exampleSlot())
	ctx := context.Background()

	res, err := svc.Reserve(ctx, bookingRequest("slot-1"))
	require.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, models.BookingConfirmed, res.Booking.Status)
	assert.Equal(t, "2025-06-01", res.Booking.Date)
	assert.Equal(t, "10:00", res.Booking.Time)

	slot, err := slots.GetByID(ctx, "slot-1")
	require.NoError(t, err)
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, res.Booking.ID, slot.BookingID)

	_, err = svc.Reserve(ctx, bookingRequest("slot-1"))
	assert.ErrorIs(t, err, models.ErrSlotAlreadyTaken)
	notifier.AssertExpectations(t)
}

func TestReserve_ConcurrentClaimsYieldOneBooking(t *testing.T) {
	svc, slots, bookings := newService(t, nil, exampleSlot())
	ctx := context.Background()

	const n = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
		other   []error
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Reserve(ctx, bookingRequest("slot-1"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, models.ErrSlotAlreadyTaken):
				taken++
			default:
				other = append(other, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, success)
	assert.Equal(t, n-1, taken)

	slot, err := slots.GetByID(ctx, "slot-1")
	require.NoError(t, err)
	assert.False(t, slot.IsAvailable)

	all, err := bookings.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReserve_UnknownSlot(t *testing.T) {
	svc, _, _ := newService(t, nil)
	_, err := svc.Reserve(context.Background(), bookingRequest("nope"))
	assert.ErrorIs(t, err, models.ErrSlotNotFound)
}

func TestReserve_Validation(t *testing.T) {
	svc, slots, _ := newService(t, nil, exampleSlot())
	ctx := context.Background()

	req := bookingRequest("slot-1")
	req.Email = "bad"
	_, err := svc.Reserve(ctx, req)
	assert.ErrorIs(t, err, models.ErrValidation)

	slot, _ := slots.GetByID(ctx, "slot-1")
	assert.True(t, slot.IsAvailable, "a rejected request must not claim the slot")
}

func TestReserve_LegacyNameField(t *testing.T) {
	svc, _, _ := newService(t, nil, exampleSlot())
	req := bookingRequest("slot-1")
	req.FullName, req.Name = "", "  Ravi  "

	res, err := svc.Reserve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", res.Booking.FullName)
}

func TestReserve_NotificationFailureIsAWarning(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("NotifyBooking", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	svc, slots, _ := newService(t, notifier, exampleSlot())

	res, err := svc.Reserve(context.Background(), bookingRequest("slot-1"))
	require.NoError(t, err)
	assert.Equal(t, NotificationWarning, res.Warning)
	require.NotNil(t, res.Booking)

	slot, _ := slots.GetByID(context.Background(), "slot-1")
	assert.False(t, slot.IsAvailable)
}

func TestReserve_InsertFailureReleasesSlot(t *testing.T) {
	svc, slots, bookings := newService(t, nil, exampleSlot())
	bookings.FailCreate = errors.New("write concern timeout")

	_, err := svc.Reserve(context.Background(), bookingRequest("slot-1"))
	require.Error(t, err)

	slot, _ := slots.GetByID(context.Background(), "slot-1")
	assert.True(t, slot.IsAvailable)
	assert.Empty(t, slot.BookingID)
}

func TestSetStatus(t *testing.T) {
	svc, _, _ := newService(t, nil, exampleSlot())
	ctx := context.Background()

	res, err := svc.Reserve(ctx, bookingRequest("slot-1"))
	require.NoError(t, err)
	id := res.Booking.ID

	same, err := svc.SetStatus(ctx, id, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, same.Status)

	done, err := svc.SetStatus(ctx, id, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, done.Status)

	_, err = svc.SetStatus(ctx, id, models.BookingCancelled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, "missing", models.BookingCancelled)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSlotAdministration(t *testing.T) {
	svc, _, _ := newService(t, nil)
	ctx := context.Background()

	slot, err := svc.CreateSlot(ctx, models.TimeSlotRequest{Date: "2025-06-01", Time: "9:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", slot.Time)
	assert.Equal(t, models.DefaultSlotDuration, slot.DurationMinutes)
	assert.True(t, slot.IsAvailable)

	_, err = svc.CreateSlot(ctx, models.TimeSlotRequest{Date: "2025-06-01", Time: "09:00"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.CreateSlot(ctx, models.TimeSlotRequest{Date: "01/06/2025", Time: "09:00"})
	assert.ErrorIs(t, err, models.ErrValidation)

	updated, err := svc.UpdateSlot(ctx, slot.ID, models.TimeSlotRequest{Date: "2025-06-02", Time: "11:30", DurationMinutes: 45})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.DurationMinutes)

	_, err = svc.Reserve(ctx, bookingRequest(slot.ID))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteSlot(ctx, slot.ID), models.ErrSlotBooked)
	_, err = svc.UpdateSlot(ctx, slot.ID, models.TimeSlotRequest{Date: "2025-06-03", Time: "10:00"})
	assert.ErrorIs(t, err, models.ErrSlotBooked)

	available, err := svc.ListAvailableSlots(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = svc.ListAvailableSlots(ctx, "June 1st")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListBookingsNewestFirst(t *testing.T) {
	svc, _, bookings := newService(t, nil)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, bookings.Create(ctx, &models.Booking{ID: "old", TimeSlotID: "a", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, bookings.Create(ctx, &models.Booking{ID: "new", TimeSlotID: "b", CreatedAt: now}))

	list, err := svc.ListBookings(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
}

type racingBookings struct {
	*memrepo.Bookings
}

func (r racingBookings) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus) (*models.Booking, error) {
	if _, err := r.Bookings.UpdateStatus(ctx, id, from, to); err != nil {
		return nil, err
	}
	return r.Bookings.UpdateStatus(ctx, id, from, to)
}

func TestSetStatus_ConcurrentSameStatusSucceeds(t *testing.T) {
	svc, _, bookings := newService(t, nil, exampleSlot())
	ctx := context.Background()

	res, err := svc.Reserve(ctx, bookingRequest("slot-1"))
	require.NoError(t, err)

	svc.Bookings = racingBookings{bookings}
	got, err := svc.SetStatus(ctx, res.Booking.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

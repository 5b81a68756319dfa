package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to InquiryStatus
		ok       bool
	}{
		{InquiryNew, InquiryContacted, true},
		{InquiryNew, InquiryClosed, true},
		{InquiryContacted, InquiryClosed, true},
		{InquiryNew, InquiryNew, true},
		{InquiryContacted, InquiryNew, false},
		{InquiryClosed, InquiryContacted, false},
		{InquiryClosed, InquiryNew, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
	assert.True(t, InquiryClosed.Terminal())
	assert.False(t, InquiryNew.Terminal())
}

func TestBookingStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingCompleted, BookingCancelled, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingCancelled, BookingCancelled, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseInquiryStatus("contacted")
	require.NoError(t, err)
	assert.Equal(t, InquiryContacted, st)

	_, err = ParseInquiryStatus("qualified")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = ParseBookingStatus("no_show")
	assert.True(t, errors.Is(err, ErrValidation))
}

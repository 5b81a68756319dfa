package models

import "fmt"

type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryNew:       {InquiryContacted, InquiryClosed},
	InquiryContacted: {InquiryClosed},
	InquiryClosed:    nil,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCompleted: nil,
	BookingCancelled: nil,
}

func ParseInquiryStatus(s string) (InquiryStatus, error) {
	st := InquiryStatus(s)
	if _, ok := inquiryTransitions[st]; !ok {
		return "", fmt.Errorf("%w: unknown inquiry status %q", ErrValidation, s)
	}
	return st, nil
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	st := BookingStatus(s)
	if _, ok := bookingTransitions[st]; !ok {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return st, nil
}

// CanTransitionTo reports whether an inquiry may move from s to next.
// Re-applying the current status is allowed and treated as a no-op.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range inquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s InquiryStatus) Terminal() bool {
	return len(inquiryTransitions[s]) == 0
}

// CanTransitionTo reports whether a booking may move from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

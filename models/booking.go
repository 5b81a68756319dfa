package models

import (
	"strings"
	"time"
)

// Booking is a claim on exactly one TimeSlot. Bookings are never deleted;
// cancellation is a status change.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	TimeSlotID      string        `bson:"timeslot_id" json:"timeslot_id"`
	Date            string        `bson:"date" json:"date"`
	Time            string        `bson:"time" json:"time"`
	FullName        string        `bson:"full_name" json:"full_name"`
	Email           string        `bson:"email" json:"email"`
	Phone           string        `bson:"phone" json:"phone"`
	BusinessType    string        `bson:"business_type" json:"business_type"`
	ServiceInterest string        `bson:"service_interest,omitempty" json:"service_interest,omitempty"`
	Message         string        `bson:"message,omitempty" json:"message,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the public booking form. Older clients send "name"
// instead of "full_name".
type BookingRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Name            string `json:"name"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=40"`
	BusinessType    string `json:"business_type" validate:"required"`
	ServiceInterest string `json:"service_interest"`
	Message         string `json:"message" validate:"max=5000"`
	TimeSlotID      string `json:"timeslot_id" validate:"required"`
}

// Normalize trims fields and folds the legacy name field into FullName.
func (r *BookingRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		r.FullName = strings.TrimSpace(r.Name)
	}
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.BusinessType = strings.TrimSpace(r.BusinessType)
	r.TimeSlotID = strings.TrimSpace(r.TimeSlotID)
}

// ReservationResult carries the booking plus a non-fatal notification warning.
type ReservationResult struct {
	Booking *Booking
	Warning string
}

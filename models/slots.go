package models

import "time"

// TimeSlot is a bookable consultation window published by an admin.
type TimeSlot struct {
	ID              string    `bson:"id" json:"id"`
	Date            string    `bson:"date" json:"date"` // "2025-06-01"
	Time            string    `bson:"time" json:"time"` // "10:00"
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	IsAvailable     bool      `bson:"is_available" json:"is_available"`
	BookingID       string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// TimeSlotRequest is the admin payload for creating or editing a slot.
type TimeSlotRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

const DefaultSlotDuration = 30

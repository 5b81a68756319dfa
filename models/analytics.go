package models

import "time"

type AnalyticsEvent struct {
	ID        string                 `bson:"id" json:"id"`
	EventType string                 `bson:"event_type" json:"event_type" binding:"required"`
	Page      string                 `bson:"page,omitempty" json:"page,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
}

type AnalyticsSummary struct {
	TotalEvents int64            `json:"total_events"`
	ByType      map[string]int64 `json:"by_type"`
}

// DashboardStats backs the admin overview screen.
type DashboardStats struct {
	TotalServices   int                     `json:"total_services"`
	TotalInquiries  int64                   `json:"total_inquiries"`
	TotalBookings   int64                   `json:"total_bookings"`
	InquiryStats    map[InquiryStatus]int64 `json:"inquiry_stats"`
	BookingStats    map[BookingStatus]int64 `json:"booking_stats"`
	RecentInquiries []Inquiry               `json:"recent_inquiries"`
	RecentBookings  []Booking               `json:"recent_bookings"`
}

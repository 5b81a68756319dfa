package admin

import (
	"context"

	"hdmonks/models"
)

const recentLimit = 5

func (s *DefaultAdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	services, err := s.Catalog.CountServices(ctx)
	if err != nil {
		return nil, err
	}
	inquiryStats, err := s.Inquiries.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bookingStats, err := s.Bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recentInquiries, err := s.Inquiries.List(ctx, 0, recentLimit)
	if err != nil {
		return nil, err
	}
	recentBookings, err := s.Bookings.List(ctx, 0, recentLimit)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalServices:   services,
		InquiryStats:    map[models.InquiryStatus]int64{models.InquiryNew: 0, models.InquiryContacted: 0, models.InquiryClosed: 0},
		BookingStats:    map[models.BookingStatus]int64{models.BookingConfirmed: 0, models.BookingCompleted: 0, models.BookingCancelled: 0},
		RecentInquiries: recentInquiries,
		RecentBookings:  recentBookings,
	}
	for st, n := range inquiryStats {
		stats.InquiryStats[st] = n
		stats.TotalInquiries += n
	}
	for st, n := range bookingStats {
		stats.BookingStats[st] = n
		stats.TotalBookings += n
	}
	return stats, nil
}

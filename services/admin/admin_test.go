package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	memrepo "hdmonks/database/repository/memory"
	"hdmonks/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin() *DefaultAdminService {
	return &DefaultAdminService{
		Bookings:  memrepo.NewBookings(),
		Inquiries: memrepo.NewInquiries(),
		Catalog:   memrepo.NewCatalog(),
		Settings:  memrepo.NewSettings(),
		Analytics: memrepo.NewAnalytics(),
	}
}

func TestDashboardStats(t *testing.T) {
	svc := newAdmin()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		status := models.InquiryNew
		if i%3 == 0 {
			status = models.InquiryClosed
		}
		require.NoError(t, svc.Inquiries.Create(ctx, &models.Inquiry{
			ID: fmt.Sprintf("inq-%d", i), FullName: "Lead", Status: status, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, svc.Bookings.Create(ctx, &models.Booking{ID: "b1", TimeSlotID: "s1", Status: models.BookingConfirmed, CreatedAt: base}))
	require.NoError(t, svc.Catalog.CreateStage(ctx, &models.Stage{ID: 1, Title: "Launch", Services: []models.Service{{ServiceID: "a"}, {ServiceID: "b"}}}))

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalServices)
	assert.EqualValues(t, 7, stats.TotalInquiries)
	assert.EqualValues(t, 3, stats.InquiryStats[models.InquiryClosed])
	assert.EqualValues(t, 0, stats.InquiryStats[models.InquiryContacted])
	assert.EqualValues(t, 1, stats.TotalBookings)
	require.Len(t, stats.RecentInquiries, 5)
	assert.Equal(t, "inq-6", stats.RecentInquiries[0].ID)
	assert.Len(t, stats.RecentBookings, 1)
}

func TestSettings_DefaultsAndRedaction(t *testing.T) {
	svc := newAdmin()
	ctx := context.Background()

	public, err := svc.PublicSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HD MONKS", public.CompanyName)

	host, pass := "smtp.gmail.com", "app-password"
	_, err = svc.UpdateSettings(ctx, models.SettingsUpdate{SMTPHost: &host, SMTPPassword: &pass})
	require.NoError(t, err)

	masked := "********"
	name := "HD Monks Legal"
	updated, err := svc.UpdateSettings(ctx, models.SettingsUpdate{CompanyName: &name, SMTPPassword: &masked})
	require.NoError(t, err)
	assert.Equal(t, "********", updated.SMTPPassword)
	assert.Equal(t, name, updated.CompanyName)

	stored, err := svc.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "app-password", stored.SMTPPassword)

	public, err = svc.PublicSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, public.SMTPHost)
	assert.Empty(t, public.SMTPPassword)

	bad := "not-an-email"
	_, err = svc.UpdateSettings(ctx, models.SettingsUpdate{CompanyEmail: &bad})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAnalytics(t *testing.T) {
	svc := newAdmin()
	ctx := context.Background()

	_, err := svc.TrackEvent(ctx, models.AnalyticsEvent{EventType: " "})
	assert.ErrorIs(t, err, models.ErrValidation)

	for _, ev := range []string{"page_view", "page_view", "cta_click"} {
		_, err := svc.TrackEvent(ctx, models.AnalyticsEvent{EventType: ev, Page: "/"})
		require.NoError(t, err)
	}
	sum, err := svc.AnalyticsSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, sum.TotalEvents)
	assert.EqualValues(t, 2, sum.ByType["page_view"])

	_, err = svc.AnalyticsSummary(ctx, time.Now(), time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, models.ErrValidation)
}

package admin

import (
	"context"
	"time"

	"hdmonks/database/repository"
	"hdmonks/models"
)

// AdminService backs the admin dashboard: overview stats, site settings
// and page analytics.
type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	GetSettings(ctx context.Context) (models.Settings, error)
	PublicSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, upd models.SettingsUpdate) (models.Settings, error)

	TrackEvent(ctx context.Context, ev models.AnalyticsEvent) (*models.AnalyticsEvent, error)
	AnalyticsSummary(ctx context.Context, start, end time.Time) (*models.AnalyticsSummary, error)
}

type DefaultAdminService struct {
	Bookings  repository.BookingRepository
	Inquiries repository.InquiryRepository
	Catalog   repository.CatalogRepository
	Settings  repository.SettingsRepository
	Analytics repository.AnalyticsRepository
}

func NewAdminService(repos *repository.Repositories) *DefaultAdminService {
	return &DefaultAdminService{
		Bookings:  repos.Bookings,
		Inquiries: repos.Inquiries,
		Catalog:   repos.Catalog,
		Settings:  repos.Settings,
		Analytics: repos.Analytics,
	}
}

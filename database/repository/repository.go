package repository

import (
	"hdmonks/database"
	analyticsRepo "hdmonks/database/repository/analytics"
	bookingRepo "hdmonks/database/repository/booking"
	catalogRepo "hdmonks/database/repository/catalog"
	clientRepo "hdmonks/database/repository/client"
	contentRepo "hdmonks/database/repository/content"
	inquiryRepo "hdmonks/database/repository/inquiry"
	principalRepo "hdmonks/database/repository/principal"
	settingsRepo "hdmonks/database/repository/settings"
	timeslotRepo "hdmonks/database/repository/timeslot"
	"hdmonks/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces used by the service layer.
type (
	TimeSlotRepository  = timeslotRepo.TimeSlotRepository
	BookingRepository   = bookingRepo.BookingRepository
	InquiryRepository   = inquiryRepo.InquiryRepository
	PrincipalRepository = principalRepo.PrincipalRepository
	ClientRepository    = clientRepo.ClientRepository
	CatalogRepository   = catalogRepo.CatalogRepository
	SettingsRepository  = settingsRepo.SettingsRepository
	AnalyticsRepository = analyticsRepo.AnalyticsRepository
)

type ContentRepository[T any] interface {
	contentRepo.ContentRepository[T]
}

// Repositories bundles every Mongo-backed repository.
type Repositories struct {
	TimeSlots    TimeSlotRepository
	Bookings     BookingRepository
	Inquiries    InquiryRepository
	Admins       PrincipalRepository
	Partners     PrincipalRepository
	Clients      ClientRepository
	Catalog      CatalogRepository
	Settings     SettingsRepository
	Analytics    AnalyticsRepository
	Blogs        ContentRepository[models.Blog]
	FAQs         ContentRepository[models.FAQ]
	Testimonials ContentRepository[models.Testimonial]
	Packages     ContentRepository[models.Package]
	Templates    ContentRepository[models.EmailTemplate]
}

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		TimeSlots:    timeslotRepo.NewMongoTimeSlotRepo(db),
		Bookings:     bookingRepo.NewMongoBookingRepo(db),
		Inquiries:    inquiryRepo.NewMongoInquiryRepo(db),
		Admins:       principalRepo.NewMongoAdminRepo(db),
		Partners:     principalRepo.NewMongoPartnerRepo(db),
		Clients:      clientRepo.NewMongoClientRepo(db),
		Catalog:      catalogRepo.NewMongoCatalogRepo(db),
		Settings:     settingsRepo.NewMongoSettingsRepo(db),
		Analytics:    analyticsRepo.NewMongoAnalyticsRepo(db),
		Blogs:        contentRepo.NewMongoBlogRepo(db),
		FAQs:         contentRepo.NewMongoFAQRepo(db),
		Testimonials: contentRepo.NewMongoTestimonialRepo(db),
		Packages:     contentRepo.NewMongoPackageRepo(db),
		Templates:    contentRepo.NewMongoTemplateRepo(db),
	}
}

// Indexers lists the repositories that own indexes, in creation order.
func (r *Repositories) Indexers() []database.IndexEnsurer {
	return []database.IndexEnsurer{
		r.TimeSlots, r.Bookings, r.Inquiries, r.Admins, r.Partners, r.Clients,
		r.Catalog, r.Analytics, r.Blogs, r.FAQs, r.Testimonials, r.Packages, r.Templates,
	}
}

package handlers

import (
	"hdmonks/models"
	"hdmonks/services/admin"
	"hdmonks/services/auth"
	"hdmonks/services/booking"
	"hdmonks/services/catalog"
	"hdmonks/services/content"
	"hdmonks/services/inquiry"
	"hdmonks/services/ledger"
	"hdmonks/services/storage"
)

// Services is everything the HTTP layer needs.
type Services struct {
	Auth         auth.AuthService
	Booking      booking.BookingService
	Inquiry      inquiry.InquiryService
	Catalog      catalog.CatalogService
	Admin        admin.AdminService
	Ledger       ledger.LedgerService
	Storage      storage.StorageService
	Blogs        *content.ContentService[models.Blog, *models.Blog]
	FAQs         *content.ContentService[models.FAQ, *models.FAQ]
	Testimonials *content.ContentService[models.Testimonial, *models.Testimonial]
	Packages     *content.ContentService[models.Package, *models.Package]
	Templates    *content.ContentService[models.EmailTemplate, *models.EmailTemplate]
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth backs the session middleware.
	Auth auth.AuthService

	AdminAuth   *AuthHandler
	PartnerAuth *AuthHandler
	Booking     *BookingHandler
	Inquiry     *InquiryHandler
	Catalog     *CatalogHandler
	Admin       *AdminHandler
	Partner     *PartnerHandler
	Storage     *StorageHandler

	Blogs        *ContentHandler[models.Blog, *models.Blog]
	FAQs         *ContentHandler[models.FAQ, *models.FAQ]
	Testimonials *ContentHandler[models.Testimonial, *models.Testimonial]
	Packages     *ContentHandler[models.Package, *models.Package]
	Templates    *ContentHandler[models.EmailTemplate, *models.EmailTemplate]
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		Auth:         s.Auth,
		AdminAuth:    NewAuthHandler(s.Auth, models.RoleAdmin),
		PartnerAuth:  NewAuthHandler(s.Auth, models.RolePartner),
		Booking:      NewBookingHandler(s.Booking),
		Inquiry:      NewInquiryHandler(s.Inquiry),
		Catalog:      NewCatalogHandler(s.Catalog),
		Admin:        NewAdminHandler(s.Admin),
		Partner:      NewPartnerHandler(s.Ledger),
		Storage:      NewStorageHandler(s.Storage),
		Blogs:        NewContentHandler(s.Blogs, "Blog"),
		FAQs:         NewContentHandler(s.FAQs, "FAQ"),
		Testimonials: NewContentHandler(s.Testimonials, "Testimonial"),
		Packages:     NewContentHandler(s.Packages, "Package"),
		Templates:    NewContentHandler(s.Templates, "Email template"),
	}
}

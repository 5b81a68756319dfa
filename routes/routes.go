package routes

import (
	"time"

	"hdmonks/handlers"
	"hdmonks/middleware"
	"hdmonks/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the marketing site endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/", handlers.Root)
		api.GET("/health", handlers.Health)

		api.GET("/stages", hb.Catalog.ListStages)
		api.GET("/stages/:id", hb.Catalog.GetStage)
		api.GET("/services/:service_id", hb.Catalog.GetService)

		api.POST("/contact", hb.Inquiry.Submit)
		api.GET("/timeslots", hb.Booking.ListAvailableSlots)
		api.POST("/booking", hb.Booking.Reserve)

		api.GET("/settings", hb.Admin.PublicSettings)
		api.GET("/blogs", hb.Blogs.ListPublished)
		api.GET("/blogs/:slug", hb.Blogs.GetBySlug)
		api.GET("/faqs", hb.FAQs.ListPublished)
		api.GET("/testimonials", hb.Testimonials.ListPublished)
		api.GET("/packages", hb.Packages.ListPublished)
		api.POST("/analytics/track", hb.Admin.Track)
	}
}

type contentRoutes interface {
	ListAll(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerContent(g *gin.RouterGroup, path string, h contentRoutes) {
	g.GET(path, h.ListAll)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// RegisterAdminRoutes registers the back office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminAuth.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.RequireRole(hb.Auth, models.RoleAdmin))
		protected.GET("/verify", hb.AdminAuth.Verify)
		protected.POST("/logout", hb.AdminAuth.Logout)
		protected.GET("/stats", hb.Admin.Stats)

		protected.POST("/stages", hb.Catalog.CreateStage)
		protected.PUT("/stages/:id", hb.Catalog.UpdateStage)
		protected.DELETE("/stages/:id", hb.Catalog.DeleteStage)
		protected.POST("/stages/:id/services", hb.Catalog.AddService)
		protected.PUT("/stages/:id/services/:service_id", hb.Catalog.UpdateService)
		protected.DELETE("/stages/:id/services/:service_id", hb.Catalog.RemoveService)

		protected.GET("/inquiries", hb.Inquiry.List)
		protected.PUT("/inquiries/:id/status", hb.Inquiry.SetStatus)

		protected.GET("/timeslots", hb.Booking.ListAllSlots)
		protected.POST("/timeslots", hb.Booking.CreateSlot)
		protected.PUT("/timeslots/:id", hb.Booking.UpdateSlot)
		protected.DELETE("/timeslots/:id", hb.Booking.DeleteSlot)
		protected.GET("/bookings", hb.Booking.ListBookings)
		protected.PUT("/bookings/:id/status", hb.Booking.SetStatus)

		registerContent(protected, "/blogs", hb.Blogs)
		registerContent(protected, "/faqs", hb.FAQs)
		registerContent(protected, "/testimonials", hb.Testimonials)
		registerContent(protected, "/packages", hb.Packages)
		registerContent(protected, "/templates", hb.Templates)

		protected.GET("/settings", hb.Admin.GetSettings)
		protected.PUT("/settings", hb.Admin.UpdateSettings)
		protected.GET("/analytics", hb.Admin.AnalyticsSummary)
		protected.POST("/upload-image", hb.Storage.UploadImage)
	}
}

// RegisterPartnerRoutes registers the reseller portal endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	partnerGroup := r.Group("/api/partner")
	{
		partnerGroup.POST("/login", hb.PartnerAuth.Login)
		partnerGroup.POST("/register", hb.PartnerAuth.RegisterPartner)

		protected := partnerGroup.Group("")
		protected.Use(middleware.RequireRole(hb.Auth, models.RolePartner))
		protected.GET("/verify", hb.PartnerAuth.Verify)
		protected.POST("/logout", hb.PartnerAuth.Logout)

		protected.GET("/clients", hb.Partner.ListClients)
		protected.GET("/clients/:id", hb.Partner.GetClient)
		protected.POST("/clients", hb.Partner.CreateClient)
		protected.PUT("/clients/:id", hb.Partner.UpdateClient)
		protected.DELETE("/clients/:id", hb.Partner.DeleteClient)
		protected.POST("/clients/:id/services", hb.Partner.AddService)
		protected.PUT("/clients/:id/services/:service_id", hb.Partner.UpdateService)
		protected.DELETE("/clients/:id/services/:service_id", hb.Partner.RemoveService)
		protected.GET("/revenue", hb.Partner.Revenue)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// RegisterRoutes installs CORS, then the per-IP limiter, then every route
// group. Rejected requests still carry CORS headers. requestsPerMin <= 0
// disables the limiter.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string, requestsPerMin int) {
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
	if requestsPerMin > 0 {
		r.Use(middleware.RateLimitMiddleware(requestsPerMin))
	}

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
}

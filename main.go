package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hdmonks/config"
	"hdmonks/cron"
	"hdmonks/database"
	"hdmonks/database/repository"
	"hdmonks/handlers"
	"hdmonks/middleware"
	"hdmonks/models"
	"hdmonks/routes"
	"hdmonks/services/admin"
	"hdmonks/services/auth"
	"hdmonks/services/booking"
	"hdmonks/services/catalog"
	"hdmonks/services/content"
	"hdmonks/services/inquiry"
	"hdmonks/services/ledger"
	"hdmonks/services/notification"
	"hdmonks/services/storage"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	database.InitDB()
	db := database.DB()
	repos := repository.NewMongoRepositories(db)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, repos.Indexers()...); err != nil {
		logger.Fatal("main: failed to ensure indexes", zap.Error(err))
	}
	cancel()

	redisClient := utils.GetAuthCacheClient()
	utils.StartHealthMonitor(ctx, 30*time.Second, redisClient, database.MongoClient)

	// Outgoing email: inline SMTP, or queued through asynq and sent by the worker.
	mailer := notification.NewSMTPMailer(notification.SMTPConfigFromApp())
	var dispatcher notification.Dispatcher = mailer
	var (
		queueClient *asynq.Client
		worker      *asynq.Server
	)
	if config.AppConfig.EmailQueueEnabled {
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		dispatcher = notification.NewQueueDispatcher(queueClient)
		worker = cron.InitEmailWorker(ctx, mailer)
	}
	notifier := notification.NewDefaultNotifier(repos.Templates, dispatcher, config.AppConfig.AdminEmail)

	var tx database.Transactor = database.DirectTransactor{}
	if config.AppConfig.MongoTransactions {
		tx = &database.MongoTransactor{Client: database.MongoClient}
	}

	authService := auth.NewAuthService(
		repos.Admins,
		repos.Partners,
		auth.NewRedisSessionCache(redisClient),
		jwtSecret(logger),
		config.SessionTTL(),
	)
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := authService.EnsureDefaultAdmin(seedCtx,
		config.AppConfig.DefaultAdminUsername,
		config.AppConfig.DefaultAdminEmail,
		config.AppConfig.DefaultAdminPassword,
	); err != nil {
		logger.Error("main: failed to seed default admin", zap.Error(err))
	}
	cancel()

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Auth:         authService,
		Booking:      booking.NewBookingService(repos.TimeSlots, repos.Bookings, tx, notifier),
		Inquiry:      inquiry.NewInquiryService(repos.Inquiries, notifier),
		Catalog:      catalog.NewCatalogService(repos.Catalog),
		Admin:        admin.NewAdminService(repos),
		Ledger:       ledger.NewLedgerService(repos.Clients, repos.Catalog),
		Storage:      storage.NewStorageService(),
		Blogs:        content.NewContentService[models.Blog, *models.Blog](repos.Blogs, "slug"),
		FAQs:         content.NewContentService[models.FAQ, *models.FAQ](repos.FAQs, ""),
		Testimonials: content.NewContentService[models.Testimonial, *models.Testimonial](repos.Testimonials, ""),
		Packages:     content.NewContentService[models.Package, *models.Package](repos.Packages, ""),
		Templates:    content.NewContentService[models.EmailTemplate, *models.EmailTemplate](repos.Templates, ""),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle, config.AllowedOrigins(), config.AppConfig.MaxRequestsPerMin)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if err := redisClient.Close(); err != nil {
		logger.Warn("main: failed to close redis client", zap.Error(err))
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// jwtSecret returns JWT_SECRET. Outside production a random per-process
// secret is used when it is unset, which invalidates tokens on restart.
func jwtSecret(logger *zap.Logger) []byte {
	if s := config.AppConfig.JWTSecret; s != "" {
		return []byte(s)
	}
	if config.IsProduction() {
		logger.Fatal("main: JWT_SECRET must be set in production")
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Fatal("main: failed to generate JWT secret", zap.Error(err))
	}
	logger.Warn("JWT_SECRET not set, using a random development secret")
	return []byte(hex.EncodeToString(buf))
}

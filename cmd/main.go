package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"rentdesk/internal/analytics"
	"rentdesk/internal/caching"
	"rentdesk/internal/handlers"
	"rentdesk/internal/jobs/background"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"
	"rentdesk/internal/repositories"
	"rentdesk/internal/services"
	"rentdesk/pkg/database"
)

const (
	accessTokenTTL  = 15 * 60       // seconds
	refreshTokenTTL = 7 * 24 * 3600 // seconds
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	mediaBucket := os.Getenv("MEDIA_BUCKET")
	if mediaBucket == "" {
		mediaBucket = "rentdesk-media"
	}

	storageSvc, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storageSvc.EnsureBucketExists(context.Background(), mediaBucket); err != nil {
		log.Printf("WARN: could not ensure media bucket %q: %v", mediaBucket, err)
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	profileRepo := repositories.NewLandlordProfileRepo(pool)
	propertyRepo := repositories.NewPropertyRepo(pool)
	roomRepo := repositories.NewRoomRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)
	billRepo := repositories.NewElectricityBillRepo(pool)
	communityRepo := repositories.NewCommunityRepo(pool)
	chatRepo := repositories.NewChatRepo(pool)
	complaintRepo := repositories.NewComplaintRepo(pool)
	documentRepo := repositories.NewDocumentRepo(pool)

	// Cache
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Services
	notifier := services.NewNotificationService()
	authSvc := services.NewAuthService(userRepo, profileRepo, cacheSvc, jwtSecret, accessTokenTTL, refreshTokenTTL)
	propertySvc := services.NewPropertyService(propertyRepo)
	roomSvc := services.NewRoomService(roomRepo, propertyRepo, userRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, roomRepo, cacheSvc, notifier)
	billingSvc := services.NewBillingService(billRepo, roomRepo)
	messagingSvc := services.NewMessagingService(communityRepo, chatRepo, userRepo)
	complaintSvc := services.NewComplaintService(complaintRepo, roomRepo, notifier)
	documentSvc := services.NewDocumentService(documentRepo, roomRepo, storageSvc, mediaBucket)
	profileSvc := services.NewProfileService(profileRepo, storageSvc, mediaBucket)
	analyticsSvc := analytics.NewService(paymentRepo, cacheSvc)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	propertyHandlers := handlers.NewPropertyHandlers(propertySvc)
	roomHandlers := handlers.NewRoomHandlers(roomSvc)
	paymentHandlers := handlers.NewPaymentHandlers(paymentSvc, storageSvc, mediaBucket)
	billingHandlers := handlers.NewBillingHandlers(billingSvc)
	messagingHandlers := handlers.NewMessagingHandlers(messagingSvc)
	complaintHandlers := handlers.NewComplaintHandlers(complaintSvc)
	documentHandlers := handlers.NewDocumentHandlers(documentSvc)
	profileHandlers := handlers.NewProfileHandlers(profileSvc)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := echo.New()
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Public routes
	e.GET("/health", healthHandlers.Health)
	e.GET("/health/ready", healthHandlers.Ready)
	e.POST("/register", authHandlers.RegisterLandlord)
	e.POST("/login", authHandlers.Login)
	e.POST("/refresh", authHandlers.Refresh)

	// Authenticated routes
	api := e.Group("", middleware.JWTMiddleware(jwtSecret))

	landlordOnly := middleware.RequireRole(models.RoleLandlord)
	tenantOnly := middleware.RequireRole(models.RoleTenant)

	api.POST("/add-user", authHandlers.AddTenant, landlordOnly)

	api.POST("/properties", propertyHandlers.CreateProperty, landlordOnly)
	api.GET("/properties", propertyHandlers.ListProperties, landlordOnly)
	api.GET("/properties/:id", propertyHandlers.GetProperty, landlordOnly)
	api.PUT("/properties/:id", propertyHandlers.UpdateProperty, landlordOnly)

	api.POST("/rooms", roomHandlers.CreateRoom, landlordOnly)
	api.GET("/rooms", roomHandlers.ListRooms, landlordOnly)
	api.GET("/rooms/:id", roomHandlers.GetRoom, landlordOnly)
	api.PUT("/rooms/:id", roomHandlers.UpdateRoom, landlordOnly)
	api.DELETE("/rooms/:id", roomHandlers.DeleteRoom, landlordOnly)
	api.POST("/rooms/:id/assign", roomHandlers.AssignTenant, landlordOnly)

	api.GET("/tenant/room", roomHandlers.TenantRoom, tenantOnly)
	api.GET("/tenant/landlord", roomHandlers.LandlordContact, tenantOnly)

	api.POST("/payments", paymentHandlers.CreatePayment, tenantOnly)
	api.GET("/payments", paymentHandlers.ListPayments)
	api.PATCH("/payments/:id", paymentHandlers.UpdatePaymentStatus, landlordOnly)

	api.POST("/bills", billingHandlers.CreateBill, landlordOnly)
	api.GET("/bills", billingHandlers.ListBills)
	api.POST("/bills/:id/paid", billingHandlers.MarkBillPaid, landlordOnly)

	api.POST("/community", messagingHandlers.PostAnnouncement, landlordOnly)
	api.GET("/community", messagingHandlers.ListAnnouncements)
	api.POST("/chat", messagingHandlers.SendChat)
	api.GET("/chat", messagingHandlers.ListChat)

	api.POST("/complaints", complaintHandlers.FileComplaint, tenantOnly)
	api.GET("/complaints", complaintHandlers.ListComplaints)
	api.PATCH("/complaints/:id", complaintHandlers.UpdateComplaintStatus, landlordOnly)

	api.POST("/documents", documentHandlers.UploadDocument, tenantOnly)
	api.GET("/documents", documentHandlers.ListDocuments)
	api.GET("/documents/:id/url", documentHandlers.DownloadDocument)

	api.GET("/profile", profileHandlers.GetProfile, landlordOnly)
	api.POST("/profile/proof", profileHandlers.UploadProof, landlordOnly)
	api.GET("/profile/proof", profileHandlers.ProofURL, landlordOnly)

	api.GET("/analytics/income", analyticsHandlers.MonthlyIncome, landlordOnly)

	// Background jobs
	scheduler := background.NewJobScheduler(analyticsSvc, userRepo, paymentRepo, billRepo)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := e.Start(":" + port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")
	e.Close()
}

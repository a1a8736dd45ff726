package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freshfold/freshfold-api/config"
	"github.com/freshfold/freshfold-api/controllers"
	"github.com/freshfold/freshfold-api/middleware"
	"github.com/freshfold/freshfold-api/models"
	"github.com/freshfold/freshfold-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting FreshFold API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Student{},
		&models.Personnel{},
		&models.Admin{},
		&models.LaundryOrder{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed the default admin and personnel accounts
	if err := config.SeedData(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Photo storage backend
	var store services.ObjectStore
	if cfg.StorageBackend == "s3" {
		s3Store, err := services.NewS3Store(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		store = s3Store
		log.Printf("Photo storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		localStore, err := services.NewLocalStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		store = localStore
		log.Printf("Photo storage: local directory %s", cfg.UploadDir)
	}

	// Order event publisher
	var events services.EventPublisher = services.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		publisher, err := services.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.OrderEventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		events = publisher
		log.Printf("Order events published to exchange %s", cfg.OrderEventExchange)
	}

	// Wire services
	controllers.InitServices(
		services.NewLifecycleService(db, events),
		services.NewOrderService(db, events),
		services.NewAdminService(db),
		services.NewPhotoService(store),
	)

	// Initialize router
	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures all routes and middleware
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.PrometheusMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/signup/student", controllers.SignupStudent)
			auth.POST("/signup/personnel", controllers.SignupPersonnel)
		}

		student := api.Group("/student")
		student.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireRole("STUDENT"))
		{
			student.POST("/orders", controllers.CreateOrder)
			student.GET("/orders", controllers.GetStudentOrders)
			student.GET("/orders/:orderId", controllers.GetOrderDetail)
			student.POST("/orders/:orderId/rating", controllers.SubmitRating)
			student.POST("/orders/:orderId/photos", controllers.UploadOrderPhoto)
			student.GET("/orders/:orderId/photos", controllers.ListOrderPhotos)
			student.GET("/personnel", controllers.ListPersonnel)
		}

		personnel := api.Group("/personnel")
		personnel.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireRole("PERSONNEL"))
		{
			personnel.GET("/orders/pending", controllers.GetPendingOrders)
			personnel.GET("/orders/inprogress", controllers.GetInProgressOrders)
			personnel.GET("/orders/completed", controllers.GetCompletedOrders)
			personnel.POST("/orders/:orderId/accept", controllers.AcceptOrder)
			personnel.POST("/orders/:orderId/reject", controllers.RejectOrder)
			personnel.PUT("/orders/:orderId/status", controllers.UpdateOrderStatus)
			personnel.GET("/stats", controllers.GetPersonnelStats)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireRole("ADMIN"))
		{
			admin.GET("/stats", controllers.GetAdminStats)
			admin.GET("/orders/recent", controllers.GetRecentOrders)
			admin.GET("/orders/all", controllers.GetAllOrders)
		}

		api.GET("/uploads/:filename", controllers.GetUploadedImage)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FreshFold API is running",
	})
}

package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"newsroom/config"
	"newsroom/email"
	"newsroom/events"
	"newsroom/handlers"
	"newsroom/middleware"
	"newsroom/models"
	"newsroom/repositories"
	"newsroom/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Publisher{},
		&models.Article{},
		&models.Newsletter{},
		&models.Subscription{},
		&models.PasswordResetToken{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Event publisher: RabbitMQ when a broker is configured, noop otherwise.
	var eventPublisher events.Publisher = events.Noop{}
	if url := os.Getenv("AMQP_URL"); url != "" {
		rmq, err := events.NewRabbitMQ(events.Config{
			URL:        url,
			Exchange:   os.Getenv("AMQP_EXCHANGE"),
			RoutingKey: os.Getenv("AMQP_ROUTING_KEY"),
		})
		if err != nil {
			log.Fatalf("rabbitmq connection failed: %v", err)
		}
		defer rmq.Close()
		eventPublisher = rmq
	}

	feedLimit := 0
	if v := os.Getenv("NEWSLETTER_FEED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			feedLimit = n
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	publisherRepo := repositories.NewPublisherRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)

	// Initialize services
	access := services.NewAccessControl()
	mailer := email.NewSMTPService()
	authService := services.NewAuthService(userRepo, publisherRepo, resetRepo, mailer)
	articleService := services.NewArticleService(articleRepo, publisherRepo, categoryRepo, userRepo, access, eventPublisher)
	newsletterService := services.NewNewsletterService(newsletterRepo, publisherRepo, userRepo, access, eventPublisher)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, newsletterRepo, publisherRepo, userRepo, access, feedLimit)
	publisherService := services.NewPublisherService(publisherRepo, articleRepo, newsletterRepo, subscriptionRepo, userRepo, access)
	categoryService := services.NewCategoryService(categoryRepo, userRepo, access)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, subscriptionService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Articles
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.POST("/:id/submit", articleHandler.SubmitArticle)
				articles.POST("/:id/approve", articleHandler.ApproveArticle)
				articles.POST("/:id/reject", articleHandler.RejectArticle)
			}

			// Newsletters
			newsletters := protected.Group("/newsletters")
			{
				newsletters.POST("", newsletterHandler.CreateNewsletter)
				newsletters.GET("", newsletterHandler.GetOwnNewsletters)
				newsletters.GET("/feed", newsletterHandler.GetFeed)
			}

			// Subscriptions
			subscriptions := protected.Group("/subscriptions")
			{
				subscriptions.POST("", subscriptionHandler.Subscribe)
				subscriptions.GET("", subscriptionHandler.GetSubscriptions)
				subscriptions.DELETE("/:id", subscriptionHandler.Unsubscribe)
			}

			// Publishers
			publishers := protected.Group("/publishers")
			{
				publishers.POST("", publisherHandler.CreatePublisher)
				publishers.PUT("/:id", publisherHandler.UpdatePublisher)
				publishers.POST("/:id/team", publisherHandler.AddTeamMember)
				publishers.GET("/:id/dashboard", publisherHandler.GetDashboard)
			}

			// Categories
			categories := protected.Group("/categories")
			{
				categories.POST("", categoryHandler.CreateCategory)
			}
		}

		// Public routes (published content only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/search", articleHandler.SearchArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/newsletters", newsletterHandler.GetPublicNewsletters)
			public.GET("/newsletters/:id", newsletterHandler.GetNewsletter)
			public.GET("/publishers", publisherHandler.GetPublishers)
			public.GET("/publishers/:id", publisherHandler.GetPublisher)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:id", categoryHandler.GetCategory)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

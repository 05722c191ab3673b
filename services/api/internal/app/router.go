package internal

import (
	"net/http"
	"strings"
	"time"

	"portfolio/pkg/cache"
	"portfolio/pkg/middleware"
	apiHTTP "portfolio/services/api/internal/controller/http"
	"portfolio/services/api/internal/entity"
	"portfolio/services/api/internal/repo/persistent"
	"portfolio/services/api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "portfolio/services/api/docs" // Swagger docs
)

// Router wires repositories, use cases and handlers into the HTTP surface.
func (a *App) Router() *gin.Engine {
	listCache := cache.NewMemory(a.cfg.CacheTTL)
	notifier := a.notifier()
	revoked, revoker := a.revocations()

	// Initialize repositories
	postRepo := persistent.NewPostRepository(a.db)
	certificateRepo := persistent.NewCertificateRepository(a.db)
	educationRepo := persistent.NewEducationRepository(a.db)
	experienceRepo := persistent.NewExperienceRepository(a.db)
	projectRepo := persistent.NewProjectRepository(a.db)
	reviewRepo := persistent.NewReviewRepository(a.db)
	voteRepo := persistent.NewVoteRepository(a.db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, listCache, notifier, a.log)
	certificateUseCase := usecase.NewCertificateUseCase(certificateRepo, listCache, notifier, a.log)
	educationUseCase := usecase.NewEducationUseCase(educationRepo, listCache, notifier, a.log)
	experienceUseCase := usecase.NewExperienceUseCase(experienceRepo, listCache, notifier, a.log)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, listCache, notifier, a.log)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, listCache, notifier, a.log)
	voteUseCase := usecase.NewVoteUseCase(voteRepo, a.log)
	authUseCase := usecase.NewAuthUseCase(usecase.AdminSecret{
		Password:     a.cfg.AdminPassword,
		PasswordHash: a.cfg.AdminPasswordHash,
	}, a.jwtService, revoker, a.log)
	uploadUseCase := usecase.NewUploadUseCase(a.uploader, a.cfg.UploadMaxBytes, a.log)
	dashboardUseCase := usecase.NewDashboardUseCase(map[string]usecase.Counter{
		entity.CollectionBlog:         postUseCase,
		entity.CollectionCertificates: certificateUseCase,
		entity.CollectionEducation:    educationUseCase,
		entity.CollectionExperience:   experienceUseCase,
		entity.CollectionProjects:     projectUseCase,
		entity.CollectionReviews:      reviewUseCase,
	}, voteUseCase)

	// Initialize HTTP handlers
	blogHandler := apiHTTP.NewBlogHandler(postUseCase, a.log)
	collections := map[string]apiHTTP.CollectionRoutes{
		entity.CollectionBlog:         blogHandler,
		entity.CollectionCertificates: apiHTTP.NewCertificateHandler(certificateUseCase, a.log),
		entity.CollectionEducation:    apiHTTP.NewEducationHandler(educationUseCase, a.log),
		entity.CollectionExperience:   apiHTTP.NewExperienceHandler(experienceUseCase, a.log),
		entity.CollectionProjects:     apiHTTP.NewProjectHandler(projectUseCase, a.log),
		entity.CollectionReviews:      apiHTTP.NewReviewHandler(reviewUseCase, a.log),
	}
	voteHandler := apiHTTP.NewVoteHandler(voteUseCase, a.log)
	adminHandler := apiHTTP.NewAdminHandler(authUseCase, dashboardUseCase, a.cfg.CookieSecure, a.log)
	uploadHandler := apiHTTP.NewUploadHandler(uploadUseCase, a.cfg.UploadMaxBytes, a.log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if a.uploadDir != "" {
		r.Static("/uploads", a.uploadDir)
	}

	adminOnly := middleware.AdminAuth(a.jwtService, revoked)
	voteLimit := a.rateLimit(a.cfg.RateLimitPerMinute)

	api := r.Group("/api")
	{
		for _, name := range entity.Collections {
			routes := collections[name]
			group := api.Group("/" + name)
			group.GET("", routes.List)
			group.GET("/:id", routes.Get)
			group.POST("", adminOnly, routes.Create)
			group.PUT("", adminOnly, routes.Update)
			group.DELETE("", adminOnly, routes.Delete)
		}
		api.GET("/blog/slug/:slug", blogHandler.GetBySlug)

		api.GET("/likes", voteHandler.GetLikes)
		api.POST("/likes", voteLimit, voteHandler.PostLike)
		api.GET("/ratings", voteHandler.GetRatings)
		api.POST("/ratings", voteLimit, voteHandler.PostRating)
		api.DELETE("/ratings", adminOnly, collections[entity.CollectionReviews].Delete)

		api.POST("/upload", adminOnly, uploadHandler.Upload)

		admin := api.Group("/admin")
		admin.POST("/check-password", a.rateLimit(a.cfg.RateLimitPerMinute), adminHandler.CheckPassword)
		admin.POST("/logout", adminHandler.Logout)
		admin.GET("/session", adminOnly, adminHandler.Session)
	}

	adminPages := middleware.AdminPages(a.jwtService, revoked, "/admin/login", a.cfg.AdminLoginURL)
	pages := r.Group("/admin")
	pages.Use(adminPages)
	{
		pages.GET("", adminHandler.Dashboard)
		pages.GET("/dashboard", adminHandler.Dashboard)
	}

	// Unknown admin pages still sit behind the gate.
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/admin" || strings.HasPrefix(path, "/admin/") {
			adminPages(c)
		}
	}, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}

func (a *App) rateLimit(limit int) gin.HandlerFunc {
	if a.redisClient == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimitMiddleware(cache.NewWindowCounter(a.redisClient), limit, time.Minute)
}

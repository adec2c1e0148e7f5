package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deadparty-backend/internal/shared/middleware"
	"deadparty-backend/pkg/container"
)

// Public read endpoints are cached whole-response in Redis. Writes are never
// cached and nothing invalidates on write; the TTLs bound the staleness.
const (
	artistCacheTTL  = 15 * time.Minute
	authorCacheTTL  = 15 * time.Minute
	articleCacheTTL = 10 * time.Minute
	eventCacheTTL   = 5 * time.Minute
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.RateLimit(c.Cache, c.Config.Rate.Requests, time.Duration(c.Config.Rate.WindowS)*time.Second),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupArtistRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupInterviewRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}

	v1.GET("/users/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
}

// ========================================
// ARTIST ROUTES
// ========================================
func setupArtistRoutes(v1 *gin.RouterGroup, c *container.Container) {
	artists := v1.Group("/artists")
	artists.Use(middleware.PageCache(c.Cache, artistCacheTTL))
	{
		artists.GET("", c.ArtistHandler.List)
		artists.GET("/:id", c.ArtistHandler.GetByID)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.PageCache(c.Cache, authorCacheTTL))
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}
}

// ========================================
// ARTICLE ROUTES (public reads)
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	articles.Use(middleware.PageCache(c.Cache, articleCacheTTL))
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/featured", c.ArticleHandler.GetFeatured)
		articles.GET("/:id", c.ArticleHandler.GetByID)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	events.Use(middleware.PageCache(c.Cache, eventCacheTTL))
	{
		events.GET("", c.EventHandler.List)
		events.GET("/upcoming", c.EventHandler.ListUpcoming)
		events.GET("/past", c.EventHandler.ListPast)
		events.GET("/:id", c.EventHandler.GetByID)
	}
}

// ========================================
// INTERVIEW REQUEST ROUTES (all authenticated, never cached)
// ========================================
func setupInterviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requests := v1.Group("/interview-requests")
	requests.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		requests.GET("", c.InterviewHandler.List)
		requests.POST("", c.InterviewHandler.Create)
		requests.GET("/:id", c.InterviewHandler.GetByID)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		comments.GET("", c.CommentHandler.List)
		comments.POST("", middleware.AuthMiddleware(c.JWTManager), c.CommentHandler.Create)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		articles := admin.Group("/articles")
		{
			articles.GET("", c.ArticleHandler.List)
			articles.POST("", c.AdminArticleHandler.Create)
			articles.GET("/:id", c.ArticleHandler.GetByID)
			articles.PUT("/:id", c.AdminArticleHandler.Update)
			articles.DELETE("/:id", c.AdminArticleHandler.Delete)
			articles.POST("/:id/toggle-featured", c.AdminArticleHandler.ToggleFeatured)
			articles.POST("/:id/image", c.AdminArticleHandler.UploadImage)
		}

		comments := admin.Group("/comments")
		comments.Use(middleware.StaffMiddleware())
		{
			comments.GET("", c.CommentHandler.AdminList)
			comments.PATCH("/:id/moderate", c.CommentHandler.Moderate)
		}
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}
		redisStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			redisStatus = "down"
		}

		status := http.StatusOK
		overall := "healthy"
		if dbStatus == "down" || redisStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"service":  "deadpartymedia-backend",
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}

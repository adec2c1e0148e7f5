package container

import (
	"context"
	"fmt"
	"time"

	"deadparty-backend/internal/config"
	infraCache "deadparty-backend/internal/infrastructure/cache"
	"deadparty-backend/internal/infrastructure/database"
	"deadparty-backend/internal/infrastructure/email"
	"deadparty-backend/internal/infrastructure/sms"
	"deadparty-backend/internal/infrastructure/storage"
	"deadparty-backend/pkg/cache"
	"deadparty-backend/pkg/jwt"
	"deadparty-backend/pkg/logger"

	articleHandler "deadparty-backend/internal/domains/article/handler"
	articleRepo "deadparty-backend/internal/domains/article/repository"
	articleService "deadparty-backend/internal/domains/article/service"
	artistHandler "deadparty-backend/internal/domains/artist/handler"
	artistRepo "deadparty-backend/internal/domains/artist/repository"
	artistService "deadparty-backend/internal/domains/artist/service"
	authorHandler "deadparty-backend/internal/domains/author/handler"
	authorRepo "deadparty-backend/internal/domains/author/repository"
	authorService "deadparty-backend/internal/domains/author/service"
	commentHandler "deadparty-backend/internal/domains/comment/handler"
	commentRepo "deadparty-backend/internal/domains/comment/repository"
	commentService "deadparty-backend/internal/domains/comment/service"
	eventHandler "deadparty-backend/internal/domains/event/handler"
	eventRepo "deadparty-backend/internal/domains/event/repository"
	eventService "deadparty-backend/internal/domains/event/service"
	interviewHandler "deadparty-backend/internal/domains/interview/handler"
	interviewRepo "deadparty-backend/internal/domains/interview/repository"
	interviewService "deadparty-backend/internal/domains/interview/service"
	userHandler "deadparty-backend/internal/domains/user/handler"
	userRepo "deadparty-backend/internal/domains/user/repository"
	userService "deadparty-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Media      *storage.MediaStorage
	Email      email.Sender
	SMS        sms.Sender

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo      userRepo.RepositoryInterface
	ArtistRepo    artistRepo.RepositoryInterface
	AuthorRepo    authorRepo.RepositoryInterface
	ArticleRepo   articleRepo.RepositoryInterface
	EventRepo     eventRepo.RepositoryInterface
	InterviewRepo interviewRepo.RepositoryInterface
	CommentRepo   commentRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService      userService.ServiceInterface
	ArtistService    artistService.ServiceInterface
	AuthorService    authorService.ServiceInterface
	ArticleService   articleService.ServiceInterface
	EventService     eventService.ServiceInterface
	InterviewService interviewService.ServiceInterface
	CommentService   commentService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler         *userHandler.UserHandler
	ArtistHandler       *artistHandler.ArtistHandler
	AuthorHandler       *authorHandler.AuthorHandler
	ArticleHandler      *articleHandler.ArticleHandler
	AdminArticleHandler *articleHandler.AdminArticleHandler
	EventHandler        *eventHandler.EventHandler
	InterviewHandler    *interviewHandler.InterviewHandler
	CommentHandler      *commentHandler.CommentHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db

	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisClient

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	media, err := storage.NewMediaStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}
	c.Media = media

	c.Email = email.NewSMTPSender(cfg.SMTP)
	if cfg.Twilio.Configured() {
		c.SMS = sms.NewTwilioSender(cfg.Twilio)
	} else {
		// Local development runs without Twilio credentials.
		c.SMS = sms.NewMockSender()
		logger.Warn("twilio not configured, sms notifications use the mock sender", nil)
	}

	pool := db.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.ArtistRepo = artistRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
	c.EventRepo = eventRepo.NewPostgresRepository(pool)
	c.InterviewRepo = interviewRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.AuthorRepo, c.Media)
	c.EventService = eventService.NewEventService(c.EventRepo)
	notifier := interviewService.NewNotifier(c.Email, c.SMS, c.UserRepo)
	c.InterviewService = interviewService.NewInterviewService(c.InterviewRepo, c.ArtistRepo, notifier)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ArticleRepo)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.AdminArticleHandler = articleHandler.NewAdminArticleHandler(c.ArticleService)
	c.EventHandler = eventHandler.NewEventHandler(c.EventService)
	c.InterviewHandler = interviewHandler.NewInterviewHandler(c.InterviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup closes external connections. Call on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis client", err)
			}
		}
	}
}

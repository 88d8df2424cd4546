package bootstrap

import (
	"context"
	"log"
	"time"

	"educonnect-be/internal/config"
	"educonnect-be/internal/controller"
	"educonnect-be/internal/pkg/logger"
	"educonnect-be/internal/pkg/mailer"
	"educonnect-be/internal/pkg/serverutils"
	"educonnect-be/internal/repository/unitofwork"
	"educonnect-be/internal/service"
	"educonnect-be/pkg/llm/factory"
	"educonnect-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	ChatController controller.IChatController
	PostController controller.IPostController

	// Auth middleware shared by every protected route group
	AuthMiddleware fiber.Handler

	// Background services (exposed for main.go to run)
	ActivityService service.IActivityService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	eventPublisher := service.NewEventPublisher(pubSub, sysLogger)

	// 3. Object storage for post images
	store, err := storage.New(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UseSSL:        cfg.Storage.UseSSL,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}
	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Printf("[WARN] Failed to ensure storage bucket %q: %v", cfg.Storage.Bucket, err)
	}

	// 4. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 5. Services
	authService := service.NewAuthService(uowFactory, emailService, eventPublisher, sysLogger)
	chatService := service.NewChatService(uowFactory, eventPublisher)
	assistantService := service.NewAssistantService(llmProvider, time.Duration(cfg.Ai.TimeoutSeconds)*time.Second, sysLogger)
	postService := service.NewPostService(uowFactory, store, eventPublisher, sysLogger)
	activityService := service.NewActivityService(pubSub, uowFactory, sysLogger)

	// 6. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		ChatController:  controller.NewChatController(chatService, assistantService),
		PostController:  controller.NewPostController(postService),
		AuthMiddleware:  serverutils.NewJwtMiddleware(authService),
		ActivityService: activityService,
		Logger:          sysLogger,
	}
}

package bootstrap

import (
	"time"

	"ai-session-be/internal/config"
	"ai-session-be/internal/controller"
	"ai-session-be/internal/pkg/identity"
	"ai-session-be/internal/pkg/logger"
	"ai-session-be/internal/pkg/serverutils"
	"ai-session-be/internal/repository/unitofwork"
	"ai-session-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	MessageController controller.IMessageController

	// Per-request identity resolution
	IdentityMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(cfg.Events.SessionLifecycleTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.SessionLifecycleTopic,
		uowFactory,
		sysLogger,
	)

	// 3. Identity Resolution
	resolver := identity.NewResolver(identity.Config{
		BaseURL:            cfg.Identity.BaseURL,
		Timeout:            time.Duration(cfg.Identity.TimeoutSeconds) * time.Second,
		InsecureSkipVerify: cfg.Identity.InsecureSkipVerify,
	}, sysLogger)

	// 4. Services
	sessionService := service.NewSessionService(uowFactory, publisherService, sysLogger)
	messageService := service.NewMessageService(uowFactory)

	// 5. Controllers
	return &Container{
		SessionController:  controller.NewSessionController(sessionService, messageService),
		MessageController:  controller.NewMessageController(messageService),
		IdentityMiddleware: serverutils.IdentityMiddleware(resolver),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}

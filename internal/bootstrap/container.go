package bootstrap

import (
	"context"
	"log"
	"time"

	"quality-gate-be/internal/config"
	"quality-gate-be/internal/controller"
	"quality-gate-be/internal/handler"
	"quality-gate-be/internal/pkg/logger"
	"quality-gate-be/internal/repository/unitofwork"
	"quality-gate-be/internal/service"
	"quality-gate-be/internal/websocket"
	"quality-gate-be/pkg/gamification"
	"quality-gate-be/pkg/lock"

	pktNats "quality-gate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ReviewController controller.IReviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BoardHandler *handler.BoardHandler
	WebSocketHub *websocket.Hub
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

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	redisUp := true
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		redisUp = false
	}

	// Action lock: Redis when available, in-process fallback otherwise.
	// The fallback is only safe single-instance; multi-instance deploys
	// must have Redis.
	var locker lock.SessionLocker
	if redisUp {
		locker = lock.NewRedisLocker(rdb, 30*time.Second)
	} else {
		log.Printf("[WARN] Using in-memory action lock (single instance only)")
		locker = lock.NewMemoryLocker()
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/board.log")
	var hubRedis *redis.Client
	if redisUp {
		hubRedis = rdb
	}
	wsHub := websocket.NewHub(hubRedis, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Topics.BoardChanged, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Topics.BoardChanged, wsHub)

	eventPublisher := gamification.NewNatsPublisher(natsPub, sysLogger)

	reviewService := service.NewReviewService(
		uowFactory,
		publisherService,
		eventPublisher,
		locker,
		sysLogger,
	)

	// Handler
	boardHandler := handler.NewBoardHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		ReviewController: controller.NewReviewController(reviewService),

		ConsumerService: consumerService,

		BoardHandler: boardHandler,
		WebSocketHub: wsHub,
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/legalconnect/platform-api/internal/api"
	"github.com/legalconnect/platform-api/internal/api/metrics"
	"github.com/legalconnect/platform-api/internal/core/ports"
	"github.com/legalconnect/platform-api/internal/core/service"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/kv"
	"github.com/legalconnect/platform-api/internal/infrastructure/db/memory"
	mongodb "github.com/legalconnect/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/legalconnect/platform-api/internal/infrastructure/db/redis"
	"github.com/legalconnect/platform-api/internal/infrastructure/objectstore"
	"github.com/legalconnect/platform-api/internal/infrastructure/queue"
	"github.com/legalconnect/platform-api/internal/pkg/config"
	"github.com/legalconnect/platform-api/pkg/logger"
)

const sessionTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Snapshot store backend ---
	var (
		store       ports.KVStore
		mongoDB     *gomongo.Database
		mongoClient *gomongo.Client
		redisClient *goredis.Client
		err         error
	)
	switch cfg.StoreDriver {
	case "mongo":
		mongoClient, mongoDB, err = mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() { _ = mongoClient.Disconnect(context.Background()) }()
		store = mongodb.NewStore(mongoDB)
	case "redis":
		redisClient, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = redisClient.Close() }()
		store = redisdb.NewStore(redisClient)
	case "memory":
		store = memory.New()
	default:
		log.Fatal().Str("driver", cfg.StoreDriver).Msg("unknown store driver")
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("snapshot store ready")

	// --- Document bytes ---
	var objects ports.ObjectStore
	if cfg.Docs.Bucket != "" {
		s3Store, err := objectstore.NewS3Store(ctx, objectstore.S3Config{
			Bucket:          cfg.Docs.Bucket,
			Region:          cfg.Docs.Region,
			Endpoint:        cfg.Docs.Endpoint,
			AccessKeyID:     cfg.Docs.AccessKey,
			SecretAccessKey: cfg.Docs.SecretKey,
			PathStyle:       cfg.Docs.Endpoint != "",
		})
		if err != nil {
			log.Fatal().Err(err).Msg("object store init failed")
		}
		objects = s3Store
	} else {
		objects = objectstore.NewMemoryStore()
	}

	// --- Repositories ---
	userRepo := kv.NewUserRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	appointmentRepo := kv.NewAppointmentRepository(store)
	caseRepo := kv.NewCaseRepository(store)
	taskRepo := kv.NewTaskRepository(store)
	messageRepo := kv.NewMessageRepository(store)
	notificationRepo := kv.NewNotificationRepository(store)
	documentRepo := kv.NewDocumentRepository(store)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, sessionTTL, logger.With("auth"))
	appointmentService := service.NewAppointmentService(appointmentRepo, notificationRepo, logger.With("appointments"))
	caseService := service.NewCaseService(caseRepo, notificationRepo, logger.With("cases"))
	taskService := service.NewTaskService(taskRepo, caseRepo, notificationRepo, logger.With("tasks"))
	messageService := service.NewMessageService(messageRepo, caseRepo, notificationRepo, logger.With("messages"))
	notificationService := service.NewNotificationService(notificationRepo, logger.With("notifications"))
	documentService := service.NewDocumentService(documentRepo, caseRepo, objects, notificationRepo, logger.With("documents"))
	directoryService := service.NewDirectoryService()

	// --- Demo data ---
	if cfg.DemoSeed {
		seeder := service.NewSeeder(userRepo, appointmentRepo, caseRepo, taskRepo, messageRepo, notificationRepo, logger.With("seeder"))
		seeded, err := seeder.Run(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("demo seeding failed")
		}
		metrics.CollectionsSeededTotal.Add(float64(seeded))
	}

	// --- Simulated lawyer replies ---
	var replies *queue.ReplyDispatcher
	if cfg.AutoReply {
		replies = queue.NewReplyDispatcher(0, cfg.AutoReplyDelay, messageService, caseRepo, logger.With("auto_reply"))
		replies.Start(ctx)
	}

	deps := api.Deps{
		JWTSecret:     cfg.JWTSecret,
		Auth:          authService,
		Appointments:  appointmentService,
		Cases:         caseService,
		Tasks:         taskService,
		Messages:      messageService,
		Notifications: notificationService,
		Documents:     documentService,
		Directory:     directoryService,
		Sessions:      sessionRepo,
		Mongo:         mongoDB,
		Redis:         redisClient,
		Log:           log,
	}
	if replies != nil {
		deps.Replies = replies
	}

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("platform api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/execution-hub/presentation-hub/internal/api/http"
	"github.com/execution-hub/presentation-hub/internal/application/notification"
	"github.com/execution-hub/presentation-hub/internal/application/presentation"
	"github.com/execution-hub/presentation-hub/internal/application/task"
	"github.com/execution-hub/presentation-hub/internal/application/workflow"
	"github.com/execution-hub/presentation-hub/internal/config"
	domainNotification "github.com/execution-hub/presentation-hub/internal/domain/notification"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/documents"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/postgres"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/rabbitmq"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/redisstore"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/scheduler"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/signer"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/sse"
	"github.com/execution-hub/presentation-hub/internal/ledger"
	"github.com/execution-hub/presentation-hub/internal/migrations"
)

const notificationBatch = 50

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config error")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	logger = logger.With().Str("company", cfg.CompanyID).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("db error")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, migrations.FS); err != nil {
		logger.Fatal().Err(err).Msg("migration error")
	}

	// repositories
	presentationRepo := postgres.NewPresentationRepository(pool)
	lcRepo := postgres.NewLCRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	companies := postgres.NewCompanyRegistry(pool)

	// infrastructure
	sseHub := sse.NewHub(cfg.SSEHeartbeat, logger)
	go sseHub.Start(ctx)

	var publisher domainNotification.Publisher
	if cfg.AMQPURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.NotificationExchange)
		if err != nil {
			logger.Fatal().Err(err).Msg("notification publisher error")
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn().Msg("AMQP_URL not set, notifications stay local")
	}

	var dedupe workflow.Deduper = redisstore.Noop{}
	if cfg.RedisURL != "" {
		client, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis error")
		}
		defer client.Close()
		dedupe = redisstore.NewDedupe(client, cfg.DedupeTTL)
	} else {
		logger.Warn().Msg("REDIS_URL not set, ledger events are not deduplicated")
	}

	documentClient := documents.NewClient(cfg.DocumentsURL)
	submitter := signer.NewClient(cfg.SignerURL, logger)

	// services
	notificationSvc := notification.NewService(notificationRepo, publisher, sseHub, logger)
	taskSvc := task.NewService(taskRepo, notificationSvc, cfg.CompanyID, logger)
	presentationSvc := presentation.NewService(presentationRepo, lcRepo, taskSvc, documentClient, submitter, cfg.CompanyID, logger)
	sweeper := presentation.NewSweeper(presentationRepo, taskSvc, cfg.PendingTimeout, logger)

	registry, err := ledger.NewDefaultRegistry()
	if err != nil {
		logger.Fatal().Err(err).Msg("ledger schema error")
	}
	processors, err := workflow.NewProcessorTable(&workflow.Effects{
		Tasks:     taskSvc,
		Notifier:  notificationSvc,
		Documents: documentClient,
		Submitter: submitter,
		Companies: companies,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("processor table error")
	}
	dispatcher := workflow.NewDispatcher(registry, presentationRepo, lcRepo, companies, processors, cfg.CompanyID, logger)
	intake := workflow.NewIntake(dispatcher, dedupe, logger)

	// ledger event consumer
	if cfg.AMQPURL != "" {
		consumer, err := rabbitmq.NewConsumer(cfg.AMQPURL, cfg.LedgerExchange, cfg.LedgerQueue, intake, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("ledger consumer error")
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("ledger consumer stopped")
				stop()
			}
		}()
	}

	// background jobs
	jobs := scheduler.New(logger)
	for _, job := range []scheduler.Job{
		{
			Name:     "presentation-destination-sweep",
			Schedule: cfg.SweepSchedule,
			Run: func(ctx context.Context) error {
				_, err := sweeper.Sweep(ctx)
				return err
			},
		},
		{
			Name:     "notification-delivery",
			Schedule: "@every " + cfg.NotificationRetryInterval.String(),
			Run: func(ctx context.Context) error {
				if _, err := notificationSvc.ProcessPending(ctx, notificationBatch); err != nil {
					return err
				}
				_, err := notificationSvc.ProcessRetryable(ctx, notificationBatch)
				return err
			},
		},
	} {
		if err := jobs.Add(job); err != nil {
			logger.Fatal().Err(err).Str("job", job.Name).Msg("scheduler error")
		}
	}
	jobs.Start()

	// API server
	apiServer := httpapi.NewServer(presentationSvc, taskSvc, intake, sseHub, cfg.AllowedOrigins, logger)
	httpServer := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
	<-jobs.Stop().Done()
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/zafesys/suite/internal/api"
	"github.com/zafesys/suite/internal/api/events"
	"github.com/zafesys/suite/internal/clients/mailer"
	"github.com/zafesys/suite/internal/clients/storage"
	"github.com/zafesys/suite/internal/clients/voiceagent"
	"github.com/zafesys/suite/internal/repository"
	"github.com/zafesys/suite/internal/service"
	"github.com/zafesys/suite/pkg/broker"
	"github.com/zafesys/suite/pkg/config"
	"github.com/zafesys/suite/pkg/job"
	"github.com/zafesys/suite/pkg/logger"
	"github.com/zafesys/suite/pkg/postgres"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	var media service.MediaStorage

	mediaClient, err := storage.NewClient(cfg.Storage)
	if err != nil {
		slog.WarnContext(ctx, "media uploads disabled", "error", err)
	} else {
		media = mediaClient
	}

	var voice service.VoiceAgent
	if cfg.VoiceAgent.APIKey != "" {
		voice = voiceagent.NewClient(cfg.VoiceAgent)
	}

	mail := mailer.New(cfg.Mailer)
	if !mail.Enabled() {
		slog.WarnContext(ctx, "mailer not configured, alerts are logged only")
	}

	var publisher service.Publisher = broker.NopPublisher{}

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		defer producer.Close()

		publisher = producer
	}

	s := service.New(cfg, repo, publisher, media, mail, voice)

	jobs := job.NewService().
		RegisterJob("check low stock", cfg.Jobs.LowStockInterval, s.CheckLowStock).
		RegisterJob("purge old technician locations", cfg.Jobs.LocationCleanup, s.PurgeOldLocations)
	jobs.Start(ctx)

	if cfg.Kafka.Enabled {
		eventHandler := events.NewEventHandler(s)

		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.TechnicianLocationTopic).
			Handle(cfg.Kafka.TechnicianLocationTopic, eventHandler.OnLocationReported).
			Consume(ctx)
		defer consumer.Close()
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "kafka", cfg.Kafka.Enabled)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

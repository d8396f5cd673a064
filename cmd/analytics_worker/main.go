package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	analyticsapp "github.com/houseoffoodsin/HOFBusiness/internal/application/analytics"
	"github.com/houseoffoodsin/HOFBusiness/internal/config"
	kafkainfra "github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/messaging/kafka"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/persistence/postgres"
	redisinfra "github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/persistence/redis"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

// The analytics worker consumes order events and keeps the daily_analytics
// table current. It shares the store with the API but runs as its own
// process, so a slow recompute never blocks order intake.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zlog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zlog.Sync()

	loc, err := cfg.Business.Location()
	if err != nil {
		zlog.Fatal("load business timezone failed", logger.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zlog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		zlog.Fatal("migrate failed", logger.Error(err))
	}

	redisClient, err := redisinfra.NewClient(cfg.Redis)
	if err != nil {
		zlog.Fatal("redis connection failed", logger.Error(err))
	}
	defer redisClient.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	prepStateRepo := redisinfra.NewPrepStateRepository(redisClient)

	analyticsService := analyticsapp.NewService(orderRepo, analyticsRepo, prepStateRepo, loc, zlog)

	consumer, err := kafkainfra.NewOrderEventConsumer(cfg.Kafka, analyticsService, loc, zlog)
	if err != nil {
		zlog.Fatal("kafka consumer failed", logger.Error(err))
	}
	defer consumer.Close()

	zlog.Info("analytics worker started",
		logger.String("topic", cfg.Kafka.OrderTopic),
		logger.String("group", cfg.Kafka.ConsumerGroup),
	)

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Fatal("consumer stopped", logger.Error(err))
	}
	zlog.Info("analytics worker shut down")
}

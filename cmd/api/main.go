package main

import (
	"context"
	"log"

	analyticsapp "github.com/houseoffoodsin/HOFBusiness/internal/application/analytics"
	orderapp "github.com/houseoffoodsin/HOFBusiness/internal/application/order"
	"github.com/houseoffoodsin/HOFBusiness/internal/config"
	"github.com/houseoffoodsin/HOFBusiness/internal/domain/menu"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/export"
	ginserver "github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/http/gin"
	kafkainfra "github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/messaging/kafka"
	"github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/persistence/postgres"
	redisinfra "github.com/houseoffoodsin/HOFBusiness/internal/infrastructure/persistence/redis"
	"github.com/houseoffoodsin/HOFBusiness/internal/interfaces/http/handler"
	"github.com/houseoffoodsin/HOFBusiness/internal/interfaces/http/router"
	"github.com/houseoffoodsin/HOFBusiness/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
	customerRepo := postgres.NewCustomerRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	prepStateRepo := redisinfra.NewPrepStateRepository(redisClient)

	if err := menuRepo.Seed(ctx, menu.DefaultCatalog()); err != nil {
		zlog.Fatal("seed menu failed", logger.Error(err))
	}

	producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka, zlog)
	if err != nil {
		zlog.Fatal("kafka producer failed", logger.Error(err))
	}
	defer producer.Close()

	orderService := orderapp.NewService(orderRepo, customerRepo, menuRepo, producer, cfg.Business, loc, zlog)
	analyticsService := analyticsapp.NewService(orderRepo, analyticsRepo, prepStateRepo, loc, zlog)

	csvWriter := export.NewWriter(cfg.Business.ExportDir, loc)

	orderHandler := handler.NewOrderHandler(orderService, csvWriter, loc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, csvWriter, loc)
	prepHandler := handler.NewPrepHandler(analyticsService, loc)

	engine := ginserver.NewEngine(cfg.App.Env)
	router.RegisterRoutes(engine, orderHandler, analyticsHandler, prepHandler)

	server := ginserver.NewServer(cfg.Server, engine)
	zlog.Info("api listening", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		zlog.Fatal("server run failed", logger.Error(err))
	}
}

package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	checkoutapp "github.com/muhammadheryan/cart-reservation/application/checkout"
	monitorapp "github.com/muhammadheryan/cart-reservation/application/monitor"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	"github.com/muhammadheryan/cart-reservation/cmd/config"
	redisclient "github.com/muhammadheryan/cart-reservation/cmd/redis"
	_ "github.com/muhammadheryan/cart-reservation/docs"
	backendrepo "github.com/muhammadheryan/cart-reservation/repository/backend"
	holdstaterepo "github.com/muhammadheryan/cart-reservation/repository/holdstate"
	journalrepo "github.com/muhammadheryan/cart-reservation/repository/journal"
	txrepo "github.com/muhammadheryan/cart-reservation/repository/tx"
	"github.com/muhammadheryan/cart-reservation/thirdparty/rabbitmq"
	"github.com/muhammadheryan/cart-reservation/transport"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	"go.uber.org/zap"
)

// @title CART RESERVATION API
// @version 1.0
// @description Stock reservation and cart consistency engine
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Initialize Redis client; hold persistence degrades to local-only when
	// redis is unreachable, it never blocks startup
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Warn("redis unavailable, holds will not survive restarts", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Connect to the journal database; analytics only, optional
	var JournalRepo journalrepo.JournalRepository
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Warn("journal db unavailable, lifecycle events will not be recorded", zap.Error(err))
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		JournalRepo = journalrepo.NewJournalRepository(db, txrepo.NewTxRepository(db))
	}

	// Initialize repositories
	HoldRepo := holdstaterepo.NewRepository()
	BackendClient := backendrepo.NewClient(cfg)

	// Initialize application layers
	Store := reservationapp.NewStore(HoldRepo)
	defer Store.Close()
	CartApp := cartapp.NewCartApp(Store, BackendClient, JournalRepo)
	CheckoutValidator := checkoutapp.NewValidator(Store, JournalRepo)

	// Rehydrate persisted holds before accepting traffic
	if err := Store.Rehydrate(context.Background()); err != nil {
		logger.Warn("rehydrate holds failed, starting clean", zap.Error(err))
	}

	// Expiry notifications via RabbitMQ; the monitor still removes lines
	// when the broker is down, users just miss the push
	var notifier monitorapp.Notifier
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq publisher unavailable", zap.Error(err))
	} else {
		notifier = publisher
		defer publisher.Close()
	}

	Monitor := monitorapp.New(Store, CartApp, notifier)
	defer Monitor.Stop()

	// Stock-update feed keeps last-known stock figures fresh
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, CartApp)
	if err != nil {
		logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
	} else {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Warn("stock update consumer failed to start", zap.Error(err))
		}
		defer consumer.Close()
	}

	httpTransport := transport.NewTransport(cfg, CartApp, Store, CheckoutValidator)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	chatapp "github.com/muhammadheryan/student-marketplace/application/chat"
	messageapp "github.com/muhammadheryan/student-marketplace/application/message"
	productapp "github.com/muhammadheryan/student-marketplace/application/product"
	searchapp "github.com/muhammadheryan/student-marketplace/application/search"
	userapp "github.com/muhammadheryan/student-marketplace/application/user"
	"github.com/muhammadheryan/student-marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/student-marketplace/cmd/redis"
	_ "github.com/muhammadheryan/student-marketplace/docs"
	messageRepo "github.com/muhammadheryan/student-marketplace/repository/message"
	productRepo "github.com/muhammadheryan/student-marketplace/repository/product"
	redisRepo "github.com/muhammadheryan/student-marketplace/repository/redis"
	txRepo "github.com/muhammadheryan/student-marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/student-marketplace/repository/user"
	"github.com/muhammadheryan/student-marketplace/thirdparty/llm"
	"github.com/muhammadheryan/student-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-marketplace/transport"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	validatorx "github.com/muhammadheryan/student-marketplace/utils/validator"
	"go.uber.org/zap"
)

// @title STUDENT MARKETPLACE API
// @version 1.0
// @description Campus marketplace: product search, shopping assistant chat and buyer-seller messaging
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("db_driver", cfg.Database.Driver))

	// Connect to database
	db, err := sqlx.Connect(cfg.Database.Driver, cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Messages are stored even when the broker is down; delivery then waits
	// for the next publish.
	var publisher rabbitmq.MessagePublisher
	pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Warn("rabbitmq unavailable, message events disabled", zap.Error(err))
	} else {
		publisher = pub
		defer pub.Close()
	}

	narrator, err := llm.NewOpenAINarrator(context.Background(), cfg.OpenAI)
	if err != nil {
		logger.Warn("llm unavailable, chat uses template replies", zap.Error(err))
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	MessageRepo := messageRepo.NewMessageRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	SearchApp := searchapp.NewSearchApp(ProductRepo)
	ChatApp := chatapp.NewChatApp(SearchApp, narrator)
	MessageApp := messageapp.NewMessageApp(cfg, TxRepo, MessageRepo, ProductRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(cfg.Internal.APIKey, &transport.RestHandler{
		UserApp:    UserApp,
		ProductApp: ProductApp,
		SearchApp:  SearchApp,
		ChatApp:    ChatApp,
		MessageApp: MessageApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

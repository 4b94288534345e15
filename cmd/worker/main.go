package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/muhammadheryan/student-marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-marketplace/utils/logger"
	"go.uber.org/zap"
)

// The delivery worker drains message.sent events and marks each message
// delivered through the API's internal route.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required for the delivery worker")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, cfg.Internal)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("delivery worker running", zap.String("api_url", cfg.Internal.APIURL))

	<-ctx.Done()
	logger.Info("delivery worker stopped")
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ShohjahonSohibov/Aberno/cmd/config"
	"github.com/ShohjahonSohibov/Aberno/thirdparty/rabbitmq"
	"github.com/ShohjahonSohibov/Aberno/utils/logger"
)

// notifier consumes lead.created events and turns them into admin notifications.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, cfg.Internal)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Lead notifier running", zap.String("queue", rabbitmq.LeadQueue))
	<-ctx.Done()
	logger.Info("Lead notifier stopped")
}

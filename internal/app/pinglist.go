package app

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"ping-list-service/internal/config"
	"ping-list-service/internal/messaging/notifier"
	"ping-list-service/internal/repository"
	"ping-list-service/internal/service"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := &sync.WaitGroup{}

	// The repository and kafka writer shut down after everything that uses
	// them, on their own ctx and waitgroup.
	delayedCtx, delayedCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	service.RunServices(ctx, logger, wg, cfg, repo, notif)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	delayedCancel()
	delayedWg.Wait()
}

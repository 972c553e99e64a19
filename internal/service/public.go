package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"ping-list-service/internal/config"
	"ping-list-service/internal/messaging/notifier"
	"ping-list-service/internal/repository"
)

// RunServices builds the dispatcher-facing service and starts the proposal
// sweeper. The returned Service is handed to the embedding dispatcher; the
// sweeper stops when ctx is cancelled.
func RunServices(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.Config,
	repo repository.Repository, notif notifier.Notifier) *Service {

	svc := NewService(logger, repo, notif)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runSweeper(ctx, logger, svc, cfg.ProposalSweepInterval)
	}()

	return svc
}

// runSweeper periodically expires proposals whose deadline passed without
// enough votes. Expiry also happens lazily on vote, so the interval only
// bounds how stale an untouched proposal can get.
func runSweeper(ctx context.Context, logger *zap.SugaredLogger, svc *Service, interval time.Duration) {
	logger.Infow("starting proposal sweeper", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping proposal sweeper")
			return
		case <-ticker.C:
			expired, err := svc.ExpireDueProposals(ctx)
			if err != nil {
				logger.Errorw("error expiring proposals", "error", err)
				continue
			}
			if expired > 0 {
				logger.Infow("expired proposals", "count", expired)
			}
		}
	}
}

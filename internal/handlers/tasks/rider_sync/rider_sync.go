package rider_sync

import (
	"context"
	"time"

	"swiftdrop/pkg/logger"
)

type Service interface {
	SyncRiderState(ctx context.Context) (released, promoted int64, err error)
}

type RiderSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRiderSync(log logger.Logger, service Service, interval time.Duration) *RiderSync {
	return &RiderSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RiderSync) TTL() time.Duration {
	return r.interval
}

func (r *RiderSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	released, promoted, err := r.service.SyncRiderState(ctxWithTimeout)

	if released > 0 || promoted > 0 {
		r.log.With(
			logger.NewField("released_riders", released),
			logger.NewField("promoted_users", promoted),
		).Info("rider sync")
	}

	return err
}

func (r *RiderSync) Info() string {
	return "rider sync"
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_post_test
package tracking_post

import (
	"context"

	"swiftdrop/internal/entities"
	"swiftdrop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RecordTrackingEvent(ctx context.Context, trackingID, status, note string) (*entities.TrackingEvent, error)
}

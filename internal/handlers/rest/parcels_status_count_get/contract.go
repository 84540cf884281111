//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_status_count_get_test
package parcels_status_count_get

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
	DeliveryStatusCounts(ctx context.Context) ([]entities.DeliveryStatusCount, error)
}

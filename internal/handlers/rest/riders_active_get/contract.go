//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=riders_active_get_test
package riders_active_get

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
	ListRidersByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error)
}

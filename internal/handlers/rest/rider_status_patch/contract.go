//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_status_patch_test
package rider_status_patch

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
	UpdateRiderApproval(ctx context.Context, riderID int64, status entities.RiderStatusType) (*entities.Rider, error)
}

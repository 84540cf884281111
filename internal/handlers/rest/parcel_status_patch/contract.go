//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_patch_test
package parcel_status_patch

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
	UpdateDeliveryStatus(ctx context.Context, id int64, newStatus entities.DeliveryStatusType, actingRiderEmail string) (*entities.Parcel, error)
}

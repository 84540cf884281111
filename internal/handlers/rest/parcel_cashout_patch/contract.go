//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_cashout_patch_test
package parcel_cashout_patch

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
	Cashout(ctx context.Context, id int64, actingRiderEmail string) (*entities.Parcel, error)
}

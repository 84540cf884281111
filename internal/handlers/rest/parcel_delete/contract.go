//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_delete_test
package parcel_delete

import (
	"context"

	"swiftdrop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteParcel(ctx context.Context, id int64) (int64, error)
}

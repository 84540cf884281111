//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_post_test
package rider_post

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
	CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error)
}

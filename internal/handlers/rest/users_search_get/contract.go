//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_search_get_test
package users_search_get

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
	SearchUsers(ctx context.Context, emailFragment string) ([]entities.User, error)
}

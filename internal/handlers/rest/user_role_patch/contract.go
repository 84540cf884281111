//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_patch_test
package user_role_patch

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
	UpdateUserRole(ctx context.Context, id int64, role entities.UserRoleType) error
}

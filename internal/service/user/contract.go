//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"swiftdrop/internal/entities"
)

type Repository interface {
	// Create вставляет пользователя, если email еще не занят.
	// Возвращает 0 без ошибки, когда пользователь уже существует.
	Create(ctx context.Context, email string, role entities.UserRoleType) (int64, error)

	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Search(ctx context.Context, emailFragment string, limit int) ([]entities.User, error)
	UpdateRoleByID(ctx context.Context, id int64, role entities.UserRoleType) (int64, error)
	UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (int64, error)

	// PromoteDriftedRiders повышает до rider пользователей, чьи заявки
	// райдеров уже одобрены, а роль осталась user.
	PromoteDriftedRiders(ctx context.Context) (int64, error)
}

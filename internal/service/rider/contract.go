//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
package rider

import (
	"context"
	"time"

	"swiftdrop/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, riderModify entities.RiderModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Rider, error)
	ListByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error)
	ListByWarehouse(ctx context.Context, warehouse string) ([]entities.Rider, error)
	UpdateStatus(ctx context.Context, id int64, status entities.RiderStatusType) (*entities.Rider, error)

	// ReleaseIdleAssigned возвращает в active райдеров со статусом
	// rider_assigned, у которых не осталось активных посылок.
	ReleaseIdleAssigned(ctx context.Context) (int64, error)
}

type ParcelRepository interface {
	// AssignRider снимает снапшот райдера на посылку условно: строка
	// матчится только пока delivery_status = pending. Возвращает matched count.
	AssignRider(ctx context.Context, parcelID int64, riderEntity *entities.Rider, at time.Time) (int64, error)

	ListByRiderAndStatuses(ctx context.Context, riderEmail string, statuses []entities.DeliveryStatusType) ([]entities.Parcel, error)
}

type UserService interface {
	PromoteToRider(ctx context.Context, email string) error

	// PromoteApprovedRiders чинит дрифт ролей после упавших вторых шагов
	// одобрения заявок.
	PromoteApprovedRiders(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

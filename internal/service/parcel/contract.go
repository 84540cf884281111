//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"swiftdrop/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify, trackingID string) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error)
	Delete(ctx context.Context, id int64) (int64, error)

	// UpdateDeliveryStatus обновляет статус условно: строка матчится только
	// если текущий статус равен from. Возвращает matched count.
	UpdateDeliveryStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType, pickedAt, deliveredAt *time.Time) (int64, error)

	// MarkPaid условно переводит payment_status unpaid -> paid. Возвращает
	// matched count; ноль означает что посылка отсутствует или уже оплачена.
	MarkPaid(ctx context.Context, id int64) (int64, error)

	// MarkCashedOut условно переводит cashout_status not_cashed -> cashed_out.
	MarkCashedOut(ctx context.Context, id int64, at time.Time) (int64, error)

	CountByDeliveryStatus(ctx context.Context) ([]entities.DeliveryStatusCount, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error)
	ListByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error)
}

type TrackingRepository interface {
	Append(ctx context.Context, event entities.TrackingEvent) (*entities.TrackingEvent, error)
	ListByTrackingID(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error)
}

type TrackingNumberFactory interface {
	NewTrackingID() string
}

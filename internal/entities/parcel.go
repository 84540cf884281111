package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Parcel struct {
	ID                   int64
	TrackingID           string
	Title                string
	CreatedBy            string
	Cost                 decimal.Decimal
	OriginWarehouse      string
	DestinationWarehouse string
	DeliveryStatus       DeliveryStatusType
	ParcelStatus         ParcelStatusType
	PaymentStatus        PaymentStatusType
	CashoutStatus        CashoutStatusType

	// Снимок данных райдера на момент назначения, не живая ссылка.
	RiderID      *int64
	RiderName    string
	RiderEmail   string
	RiderContact string

	CreatedAt   time.Time
	PickedAt    *time.Time
	DeliveredAt *time.Time
	CashedOutAt *time.Time
	UpdatedAt   time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending                DeliveryStatusType = "pending"
	DeliveryRiderAssigned          DeliveryStatusType = "rider_assigned"
	DeliveryInTransit              DeliveryStatusType = "in_transit"
	DeliveryDelivered              DeliveryStatusType = "delivered"
	DeliveryServiceCenterDelivered DeliveryStatusType = "service_center_delivered"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// CanTransitionTo проверяет, что переход из s в next - разрешенный шаг
// жизненного цикла. Назад машина не ходит.
func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	switch s {
	case DeliveryPending:
		return next == DeliveryRiderAssigned
	case DeliveryRiderAssigned:
		return next == DeliveryInTransit
	case DeliveryInTransit:
		return next == DeliveryDelivered || next == DeliveryServiceCenterDelivered
	default:
		return false
	}
}

func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryServiceCenterDelivered
}

// ParcelStatusType - вторичный маркер (parcel_status), его читают
// фильтры на клиенте. Живет отдельно от delivery_status.
type ParcelStatusType string

const (
	ParcelCreated    ParcelStatusType = "created"
	ParcelInTransit  ParcelStatusType = "in_transit"
	ParcelProcessing ParcelStatusType = "processing"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type CashoutStatusType string

const (
	CashoutNotCashed CashoutStatusType = "not_cashed"
	CashoutCashedOut CashoutStatusType = "cashed_out"
)

func (s CashoutStatusType) String() string {
	return string(s)
}

type ParcelModify struct {
	ID                   *int64
	Title                *string
	CreatedBy            *string
	Cost                 *decimal.Decimal
	OriginWarehouse      *string
	DestinationWarehouse *string
}

// ParcelFilter задает необязательные условия выборки. Пустой фильтр
// возвращает все посылки.
type ParcelFilter struct {
	CreatedBy      *string
	PaymentStatus  *PaymentStatusType
	DeliveryStatus *DeliveryStatusType
}

type DeliveryStatusCount struct {
	Status DeliveryStatusType
	Count  int64
}

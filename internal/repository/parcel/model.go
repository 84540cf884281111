package parcel

import "time"

// ParcelDB - строка таблицы parcels как она есть. Cost сканируется текстом,
// чтобы не терять точность numeric.
type ParcelDB struct {
	ID                   int64
	TrackingID           string
	Title                string
	CreatedBy            string
	Cost                 string
	OriginWarehouse      string
	DestinationWarehouse string
	DeliveryStatus       string
	ParcelStatus         string
	PaymentStatus        string
	CashoutStatus        string
	RiderID              *int64
	RiderName            *string
	RiderEmail           *string
	RiderContact         *string
	CreatedAt            time.Time
	PickedAt             *time.Time
	DeliveredAt          *time.Time
	CashedOutAt          *time.Time
	UpdatedAt            time.Time
}

type ParcelModifyDB struct {
	ID                   *int64
	Title                *string
	CreatedBy            *string
	Cost                 *string
	OriginWarehouse      *string
	DestinationWarehouse *string
}

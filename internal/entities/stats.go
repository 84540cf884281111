package entities

import "github.com/shopspring/decimal"

type UserStats struct {
	TotalParcels     int64
	DeliveredParcels int64
	TotalSpent       decimal.Decimal
}

type AdminStats struct {
	TotalUsers     int64
	TotalParcels   int64
	TotalDelivered int64
	TotalRevenue   decimal.Decimal
	TotalProfit    decimal.Decimal
}

// EarningsBasis - срез полей посылки, по которым считается доля райдера.
// Нарочно без фильтра по оплате: доля считается по всем посылкам с
// ненулевой стоимостью.
type EarningsBasis struct {
	Cost                 decimal.Decimal
	OriginWarehouse      string
	DestinationWarehouse string
	DeliveryStatus       DeliveryStatusType
}

type RiderStats struct {
	TotalParcels  int64
	Delivered     int64
	Pending       int64
	TotalEarnings decimal.Decimal
}

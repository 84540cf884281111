package earnings

import "github.com/shopspring/decimal"

var (
	sameWarehouseShare  = decimal.NewFromFloat(0.5)
	crossWarehouseShare = decimal.NewFromFloat(0.8)
)

type Factory struct{}

func New() *Factory {
	return &Factory{}
}

// RiderShare возвращает долю райдера от стоимости посылки: 50% если склад
// отправки совпадает со складом назначения, иначе 80%. Нулевая стоимость
// не приносит ничего.
func (f *Factory) RiderShare(cost decimal.Decimal, origin, destination string) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	if origin == destination {
		return cost.Mul(sameWarehouseShare)
	}
	return cost.Mul(crossWarehouseShare)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/entities"
)

type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	ParcelTotals(ctx context.Context) (total, delivered int64, err error)
	UserParcelTotals(ctx context.Context, email string) (total, delivered int64, spent decimal.Decimal, err error)

	// TotalRevenue - сумма по строкам платежей, то есть только оплаченные.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// EarningsBasis - все посылки с ненулевой стоимостью, без фильтра по оплате.
	EarningsBasis(ctx context.Context) ([]entities.EarningsBasis, error)

	// RiderEarningsBasis - все посылки райдера, включая бесплатные.
	RiderEarningsBasis(ctx context.Context, riderEmail string) ([]entities.EarningsBasis, error)
}

type EarningsFactory interface {
	RiderShare(cost decimal.Decimal, origin, destination string) decimal.Decimal
}

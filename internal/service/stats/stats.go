package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/entities"
)

// Stats - чистая read-side агрегация. Ничего не мутирует и не кеширует:
// каждый вызов заново сканирует хранилище.
type Stats struct {
	repository Repository
	earnings   EarningsFactory
}

func New(repository Repository, earnings EarningsFactory) *Stats {
	return &Stats{
		repository: repository,
		earnings:   earnings,
	}
}

func (s *Stats) UserStats(ctx context.Context, email string) (*entities.UserStats, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	total, delivered, spent, err := s.repository.UserParcelTotals(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user parcel totals: %w", err)
	}

	return &entities.UserStats{
		TotalParcels:     total,
		DeliveredParcels: delivered,
		TotalSpent:       spent,
	}, nil
}

// AdminStats считает выручку по платежам (только оплаченные посылки), а
// долю райдеров - по всем посылкам с ненулевой стоимостью. Расхождение
// баз унаследовано от продуктового поведения и сохранено сознательно.
func (s *Stats) AdminStats(ctx context.Context) (*entities.AdminStats, error) {
	totalUsers, err := s.repository.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalParcels, totalDelivered, err := s.repository.ParcelTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("parcel totals: %w", err)
	}

	totalRevenue, err := s.repository.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	basis, err := s.repository.EarningsBasis(ctx)
	if err != nil {
		return nil, fmt.Errorf("earnings basis: %w", err)
	}

	riderEarnings := decimal.Zero
	for _, b := range basis {
		riderEarnings = riderEarnings.Add(s.earnings.RiderShare(b.Cost, b.OriginWarehouse, b.DestinationWarehouse))
	}

	return &entities.AdminStats{
		TotalUsers:     totalUsers,
		TotalParcels:   totalParcels,
		TotalDelivered: totalDelivered,
		TotalRevenue:   totalRevenue,
		TotalProfit:    totalRevenue.Sub(riderEarnings),
	}, nil
}

func (s *Stats) RiderStats(ctx context.Context, riderEmail string) (*entities.RiderStats, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	basis, err := s.repository.RiderEarningsBasis(ctx, riderEmail)
	if err != nil {
		return nil, fmt.Errorf("rider earnings basis: %w", err)
	}

	result := entities.RiderStats{
		TotalEarnings: decimal.Zero,
	}
	for _, b := range basis {
		result.TotalParcels++
		if b.DeliveryStatus.IsTerminal() {
			result.Delivered++
		} else {
			result.Pending++
		}
		result.TotalEarnings = result.TotalEarnings.Add(s.earnings.RiderShare(b.Cost, b.OriginWarehouse, b.DestinationWarehouse))
	}

	return &result, nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

package stats

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected stats repository count users error: %w", err)
	}

	return count, nil
}

func (r *Repository) ParcelTotals(ctx context.Context) (total, delivered int64, err error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivery_status IN ('delivered', 'service_center_delivered'))
		FROM parcels
	`

	err = r.querier.QueryRow(ctx, query).Scan(&total, &delivered)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected stats repository parcel totals error: %w", err)
	}

	return total, delivered, nil
}

// UserParcelTotals считает потраченное только по оплаченным посылкам.
func (r *Repository) UserParcelTotals(ctx context.Context, email string) (total, delivered int64, spent decimal.Decimal, err error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE delivery_status IN ('delivered', 'service_center_delivered')),
			COALESCE(SUM(cost) FILTER (WHERE payment_status = 'paid'), 0)::text
		FROM parcels
		WHERE created_by = $1
	`

	var spentText string
	err = r.querier.QueryRow(ctx, query, email).Scan(&total, &delivered, &spentText)
	if err != nil {
		return 0, 0, decimal.Zero, fmt.Errorf("unexpected stats repository user parcel totals error: %w", err)
	}

	spent, err = decimal.NewFromString(spentText)
	if err != nil {
		return 0, 0, decimal.Zero, fmt.Errorf("parse spent total %q: %w", spentText, err)
	}

	return total, delivered, spent, nil
}

func (r *Repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::text FROM payments`

	var revenueText string
	err := r.querier.QueryRow(ctx, query).Scan(&revenueText)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unexpected stats repository total revenue error: %w", err)
	}

	revenue, err := decimal.NewFromString(revenueText)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse revenue total %q: %w", revenueText, err)
	}

	return revenue, nil
}

func (r *Repository) EarningsBasis(ctx context.Context) ([]entities.EarningsBasis, error) {
	query := `
		SELECT cost::text, origin_warehouse, destination_warehouse, delivery_status
		FROM parcels
		WHERE cost > 0
	`

	return r.listBasis(ctx, query)
}

func (r *Repository) RiderEarningsBasis(ctx context.Context, riderEmail string) ([]entities.EarningsBasis, error) {
	query := `
		SELECT cost::text, origin_warehouse, destination_warehouse, delivery_status
		FROM parcels
		WHERE rider_email = $1
	`

	return r.listBasis(ctx, query, riderEmail)
}

func (r *Repository) listBasis(ctx context.Context, query string, args ...interface{}) ([]entities.EarningsBasis, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository earnings basis error: %w", err)
	}
	defer rows.Close()

	basis := make([]entities.EarningsBasis, 0, 8)
	for rows.Next() {
		var costText, origin, destination, status string
		if err := rows.Scan(&costText, &origin, &destination, &status); err != nil {
			return nil, fmt.Errorf("unexpected stats repository earnings basis error: %w", err)
		}

		cost, err := decimal.NewFromString(costText)
		if err != nil {
			return nil, fmt.Errorf("parse parcel cost %q: %w", costText, err)
		}

		basis = append(basis, entities.EarningsBasis{
			Cost:                 cost,
			OriginWarehouse:      origin,
			DestinationWarehouse: destination,
			DeliveryStatus:       entities.DeliveryStatusType(status),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository earnings basis error: %w", err)
	}

	return basis, nil
}

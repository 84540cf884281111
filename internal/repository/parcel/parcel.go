package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// cost::text, чтобы numeric не терял точность при сканировании.
const parcelColumns = `id, tracking_id, title, created_by, cost::text,
	origin_warehouse, destination_warehouse,
	delivery_status, parcel_status, payment_status, cashout_status,
	rider_id, rider_name, rider_email, rider_contact,
	created_at, picked_at, delivered_at, cashed_out_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanParcel(row pgx.Row, p *ParcelDB) error {
	return row.Scan(
		&p.ID,
		&p.TrackingID,
		&p.Title,
		&p.CreatedBy,
		&p.Cost,
		&p.OriginWarehouse,
		&p.DestinationWarehouse,
		&p.DeliveryStatus,
		&p.ParcelStatus,
		&p.PaymentStatus,
		&p.CashoutStatus,
		&p.RiderID,
		&p.RiderName,
		&p.RiderEmail,
		&p.RiderContact,
		&p.CreatedAt,
		&p.PickedAt,
		&p.DeliveredAt,
		&p.CashedOutAt,
		&p.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify, trackingID string) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `
		INSERT INTO parcels (tracking_id, title, created_by, cost, origin_warehouse, destination_warehouse)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		trackingID,
		parcelModifyModel.Title,
		parcelModifyModel.CreatedBy,
		parcelModifyModel.Cost,
		parcelModifyModel.OriginWarehouse,
		parcelModifyModel.DestinationWarehouse,
	), &parcelModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(ctx, query, id), &parcelModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel)
}

func (r *Repository) List(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels")

	// опциональные условия фильтра
	if filter.CreatedBy != nil {
		builder = builder.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.PaymentStatus != nil {
		builder = builder.Where(sq.Eq{"payment_status": string(*filter.PaymentStatus)})
	}
	if filter.DeliveryStatus != nil {
		builder = builder.Where(sq.Eq{"delivery_status": string(*filter.DeliveryStatus)})
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := scanParcel(rows, &parcelModel); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels)
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}

// UpdateDeliveryStatus матчит строку только при совпадении текущего статуса
// с from, чтобы конкурентные переходы не перетирали друг друга.
func (r *Repository) UpdateDeliveryStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType, pickedAt, deliveredAt *time.Time) (int64, error) {
	builder := qb.
		Update("parcels").
		Set("delivery_status", string(to)).
		Set("updated_at", sq.Expr("NOW()"))

	if pickedAt != nil {
		builder = builder.Set("picked_at", *pickedAt)
	}
	if deliveredAt != nil {
		builder = builder.Set("delivered_at", *deliveredAt)
	}

	builder = builder.Where(sq.Eq{
		"id":              id,
		"delivery_status": string(from),
	})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository update delivery status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository update delivery status error: %w", err)
	}

	return result.RowsAffected(), nil
}

// MarkPaid вместе с оплатой переводит parcel_status в processing - по нему
// фильтруют клиентские выборки.
func (r *Repository) MarkPaid(ctx context.Context, id int64) (int64, error) {
	query := `
		UPDATE parcels
		SET payment_status = 'paid',
		    parcel_status = 'processing',
		    updated_at = NOW()
		WHERE id = $1
		  AND payment_status = 'unpaid'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository mark paid error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) MarkCashedOut(ctx context.Context, id int64, at time.Time) (int64, error) {
	query := `
		UPDATE parcels
		SET cashout_status = 'cashed_out',
		    cashed_out_at = $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND cashout_status = 'not_cashed'
	`

	result, err := r.querier.Exec(ctx, query, id, at)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository mark cashed out error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CountByDeliveryStatus(ctx context.Context) ([]entities.DeliveryStatusCount, error) {
	query := `
		SELECT delivery_status, COUNT(*)
		FROM parcels
		GROUP BY delivery_status
		ORDER BY delivery_status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count by delivery status error: %w", err)
	}
	defer rows.Close()

	counts := make([]entities.DeliveryStatusCount, 0, 5)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository count by delivery status error: %w", err)
		}
		counts = append(counts, entities.DeliveryStatusCount{
			Status: entities.DeliveryStatusType(status),
			Count:  count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count by delivery status error: %w", err)
	}

	return counts, nil
}

// AssignRider снимает снапшот райдера на посылку. Условие по pending
// гарантирует, что два админа не назначат двух райдеров на одну посылку.
func (r *Repository) AssignRider(ctx context.Context, parcelID int64, riderEntity *entities.Rider, at time.Time) (int64, error) {
	query := `
		UPDATE parcels
		SET delivery_status = 'rider_assigned',
		    parcel_status = 'in_transit',
		    rider_id = $2,
		    rider_name = $3,
		    rider_email = $4,
		    rider_contact = $5,
		    updated_at = $6
		WHERE id = $1
		  AND delivery_status = 'pending'
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		parcelID,
		riderEntity.ID,
		riderEntity.Name,
		riderEntity.Email,
		riderEntity.Contact,
		at,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository assign rider error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListByRiderAndStatuses(ctx context.Context, riderEmail string, statuses []entities.DeliveryStatusType) ([]entities.Parcel, error) {
	statusValues := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusValues = append(statusValues, string(s))
	}

	builder := qb.
		Select(parcelColumns).
		From("parcels").
		Where(sq.Eq{
			"rider_email":     riderEmail,
			"delivery_status": statusValues,
		}).
		OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list by rider error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list by rider error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := scanParcel(rows, &parcelModel); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list by rider error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list by rider error: %w", err)
	}

	return ToDomainList(parcelModels)
}

package rider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/repository"
	"swiftdrop/internal/service/rider"
)

const riderColumns = `id, name, email, contact, warehouse, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanRider(row pgx.Row, r *RiderDB) error {
	return row.Scan(
		&r.ID,
		&r.Name,
		&r.Email,
		&r.Contact,
		&r.Warehouse,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, riderModifyEntity entities.RiderModify) (int64, error) {
	riderModifyModel := FromDomainModify(&riderModifyEntity)

	query := `
		INSERT INTO riders (name, email, contact, warehouse, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		riderModifyModel.Name,
		riderModifyModel.Email,
		riderModifyModel.Contact,
		riderModifyModel.Warehouse,
		riderModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, rider.ErrConflict
		}
		return 0, fmt.Errorf("unexpected rider repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Rider, error) {
	query := `SELECT ` + riderColumns + ` FROM riders WHERE id = $1`

	var riderModel RiderDB
	err := scanRider(r.querier.QueryRow(ctx, query, id), &riderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository getbyid error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error) {
	query := `
		SELECT ` + riderColumns + `
		FROM riders
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
	`

	return r.list(ctx, query, string(status))
}

func (r *Repository) ListByWarehouse(ctx context.Context, warehouse string) ([]entities.Rider, error) {
	query := `
		SELECT ` + riderColumns + `
		FROM riders
		WHERE warehouse = $1
		ORDER BY created_at DESC, id DESC
	`

	return r.list(ctx, query, warehouse)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.RiderStatusType) (*entities.Rider, error) {
	query := `
		UPDATE riders
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + riderColumns

	var riderModel RiderDB
	err := scanRider(r.querier.QueryRow(ctx, query, id, string(status)), &riderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rider.ErrRiderNotFound
		}
		return nil, fmt.Errorf("unexpected rider repository update status error: %w", err)
	}

	return ToDomain(&riderModel), nil
}

func (r *Repository) ReleaseIdleAssigned(ctx context.Context) (int64, error) {
	query := `
		UPDATE riders
		SET status = 'active',
		    updated_at = NOW()
		WHERE status = 'rider_assigned'
		  AND NOT EXISTS (
		      SELECT 1
		      FROM parcels
		      WHERE parcels.rider_id = riders.id
		        AND parcels.delivery_status IN ('rider_assigned', 'in_transit')
		  )
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected rider repository release idle assigned error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Rider, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}
	defer rows.Close()

	riderModels := make([]RiderDB, 0, 8)
	for rows.Next() {
		var riderModel RiderDB
		if err := scanRider(rows, &riderModel); err != nil {
			return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
		}
		riderModels = append(riderModels, riderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected rider repository list error: %w", err)
	}

	return ToDomainList(riderModels), nil
}

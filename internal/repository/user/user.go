package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/service/user"
)

const userColumns = `id, email, role, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create идемпотентен: повторная вставка того же email ничего не меняет
// и возвращает 0 без ошибки.
func (r *Repository) Create(ctx context.Context, email string, role entities.UserRoleType) (int64, error) {
	query := `
		INSERT INTO users (email, role)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, email, string(role)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Search(ctx context.Context, emailFragment string, limit int) ([]entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email ILIKE '%' || $1 || '%'
		ORDER BY email
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, emailFragment, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, limit)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Email,
			&userModel.Role,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository search error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository search error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) PromoteDriftedRiders(ctx context.Context) (int64, error) {
	query := `
		UPDATE users
		SET role = 'rider'
		WHERE role = 'user'
		  AND EXISTS (
		      SELECT 1
		      FROM riders
		      WHERE riders.email = users.email
		        AND riders.status IN ('active', 'rider_assigned')
		  )
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository promote drifted riders error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UpdateRoleByID(ctx context.Context, id int64, role entities.UserRoleType) (int64, error) {
	query := `UPDATE users SET role = $2 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, string(role))
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository update role error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UpdateRoleByEmail(ctx context.Context, email string, role entities.UserRoleType) (int64, error) {
	query := `UPDATE users SET role = $2 WHERE email = $1`

	result, err := r.querier.Exec(ctx, query, email, string(role))
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository update role error: %w", err)
	}

	return result.RowsAffected(), nil
}

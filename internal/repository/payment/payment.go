package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/repository"
	"swiftdrop/internal/service/parcel"
)

const paymentColumns = `id, parcel_id, amount::text, transaction_id, payer_email, method, paid_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanPayment(row pgx.Row, p *PaymentDB) error {
	return row.Scan(
		&p.ID,
		&p.ParcelID,
		&p.Amount,
		&p.TransactionID,
		&p.PayerEmail,
		&p.Method,
		&p.PaidAt,
	)
}

func (r *Repository) Create(ctx context.Context, paymentModifyEntity entities.PaymentModify) (*entities.Payment, error) {
	paymentModifyModel := FromDomainModify(&paymentModifyEntity)

	query := `
		INSERT INTO payments (parcel_id, amount, transaction_id, payer_email, method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns

	var paymentModel PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentModifyModel.ParcelID,
		paymentModifyModel.Amount,
		paymentModifyModel.TransactionID,
		paymentModifyModel.PayerEmail,
		paymentModifyModel.Method,
	), &paymentModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentModel)
}

func (r *Repository) ListByPayer(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payer_email = $1
		ORDER BY paid_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, payerEmail)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list by payer error: %w", err)
	}
	defer rows.Close()

	paymentModels := make([]PaymentDB, 0, 8)
	for rows.Next() {
		var paymentModel PaymentDB
		if err := scanPayment(rows, &paymentModel); err != nil {
			return nil, fmt.Errorf("unexpected payment repository list by payer error: %w", err)
		}
		paymentModels = append(paymentModels, paymentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository list by payer error: %w", err)
	}

	return ToDomainList(paymentModels)
}

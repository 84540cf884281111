package payment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"swiftdrop/internal/entities"
)

func ToDomain(p *PaymentDB) (*entities.Payment, error) {
	if p == nil {
		return nil, nil
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse payment amount %q: %w", p.Amount, err)
	}

	return &entities.Payment{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		Amount:        amount,
		TransactionID: p.TransactionID,
		PayerEmail:    p.PayerEmail,
		Method:        p.Method,
		PaidAt:        p.PaidAt,
	}, nil
}

func ToDomainList(paymentModels []PaymentDB) ([]entities.Payment, error) {
	paymentEntities := make([]entities.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		paymentEntity, err := ToDomain(&paymentModels[i])
		if err != nil {
			return nil, err
		}
		paymentEntities = append(paymentEntities, *paymentEntity)
	}
	return paymentEntities, nil
}

func FromDomainModify(p *entities.PaymentModify) *PaymentModifyDB {
	if p == nil {
		return nil
	}
	paymentModifyDB := &PaymentModifyDB{
		ParcelID:      p.ParcelID,
		TransactionID: p.TransactionID,
		PayerEmail:    p.PayerEmail,
		Method:        p.Method,
	}

	if p.Amount != nil {
		amount := p.Amount.String()
		paymentModifyDB.Amount = &amount
	}

	return paymentModifyDB
}

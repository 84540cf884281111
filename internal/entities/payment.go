package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64
	ParcelID      int64
	Amount        decimal.Decimal
	TransactionID string
	PayerEmail    string
	Method        string
	PaidAt        time.Time
}

type PaymentModify struct {
	ParcelID      *int64
	Amount        *decimal.Decimal
	TransactionID *string
	PayerEmail    *string
	Method        *string
}

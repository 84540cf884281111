package payment

import "time"

// Amount сканируется текстом, чтобы не терять точность numeric.
type PaymentDB struct {
	ID            int64
	ParcelID      int64
	Amount        string
	TransactionID string
	PayerEmail    string
	Method        string
	PaidAt        time.Time
}

type PaymentModifyDB struct {
	ParcelID      *int64
	Amount        *string
	TransactionID *string
	PayerEmail    *string
	Method        *string
}

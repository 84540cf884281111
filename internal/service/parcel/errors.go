package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidCost           = errors.New("invalid cost")
	ErrInvalidWarehouse      = errors.New("invalid warehouse code")
	ErrInvalidStatus         = errors.New("invalid delivery status")

	ErrParcelNotFound   = errors.New("parcel not found")
	ErrNotAssignedRider = errors.New("acting rider is not assigned to this parcel")

	ErrInvalidTransition = errors.New("illegal delivery status transition")
	ErrAlreadyPaid       = errors.New("parcel already paid")

	// ErrPaymentSyncPending: посылка уже помечена оплаченной, но строка
	// платежа не записалась. Доводится до конца ретраем через consumer.
	ErrPaymentSyncPending = errors.New("parcel marked paid, payment record pending")

	// ErrDuplicateTransaction: платеж с таким transaction_id уже записан.
	ErrDuplicateTransaction = errors.New("payment transaction already recorded")
)

package rider

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidContact        = errors.New("invalid contact")
	ErrInvalidWarehouse      = errors.New("invalid warehouse code")
	ErrInvalidStatus         = errors.New("invalid rider status")

	ErrRiderNotFound  = errors.New("rider not found")
	ErrParcelNotFound = errors.New("parcel not found or already assigned")
	ErrConflict       = errors.New("rider already exists")

	// ErrRoleSyncPending: статус райдера обновлен, но роль пользователя
	// не переключилась. Дрейф чинит фоновая задача rider_sync.
	ErrRoleSyncPending = errors.New("rider approved, user role promotion pending")
)

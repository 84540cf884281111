package entities

import "time"

type Rider struct {
	ID        int64
	Name      string
	Email     string
	Contact   string
	Warehouse string
	Status    RiderStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RiderStatusType string

const (
	RiderPending  RiderStatusType = "pending"
	RiderActive   RiderStatusType = "active"
	RiderAssigned RiderStatusType = "rider_assigned"
	RiderRejected RiderStatusType = "rejected"
)

const DefaultRiderStatus = RiderPending

func (s RiderStatusType) String() string {
	return string(s)
}

// RiderAssignment - итог успешного назначения райдера на посылку.
type RiderAssignment struct {
	ParcelID   int64
	RiderID    int64
	RiderName  string
	RiderEmail string
	AssignedAt time.Time
}

type RiderModify struct {
	ID        *int64
	Name      *string
	Email     *string
	Contact   *string
	Warehouse *string
	Status    *RiderStatusType
}

package rider

import "time"

type RiderDB struct {
	ID        int64
	Name      string
	Email     string
	Contact   string
	Warehouse string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RiderModifyDB struct {
	ID        *int64
	Name      *string
	Email     *string
	Contact   *string
	Warehouse *string
	Status    *string
}

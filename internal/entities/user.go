package entities

import "time"

type User struct {
	ID        int64
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
}

// UserRoleType - единственный источник истины для авторизации.
type UserRoleType string

const (
	RoleUser  UserRoleType = "user"
	RoleRider UserRoleType = "rider"
	RoleAdmin UserRoleType = "admin"
)

const DefaultUserRole = RoleUser

func (r UserRoleType) String() string {
	return string(r)
}

package user

import "swiftdrop/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToDomainList(userModels []UserDB) []entities.User {
	userEntities := make([]entities.User, 0, len(userModels))
	for i := range userModels {
		userEntities = append(userEntities, *ToDomain(&userModels[i]))
	}
	return userEntities
}

package user

import (
	"context"
	"fmt"
	"strings"

	"swiftdrop/internal/entities"
)

const searchLimit = 10

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// CreateUser идемпотентен: повторный запрос на тот же email - это no-op
// успех, а не ошибка. Возвращает true, если пользователь был создан.
func (s *User) CreateUser(ctx context.Context, email string) (bool, error) {
	if !isValidEmail(email) {
		return false, ErrInvalidEmail
	}

	id, err := s.repository.Create(ctx, strings.ToLower(email), entities.DefaultUserRole)
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	return id != 0, nil
}

func (s *User) GetRole(ctx context.Context, email string) (entities.UserRoleType, error) {
	if !isValidEmail(email) {
		return "", ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", fmt.Errorf("get user role: %w", err)
	}

	if userEntity.Role == "" {
		return entities.DefaultUserRole, nil
	}
	return userEntity.Role, nil
}

func (s *User) SearchUsers(ctx context.Context, emailFragment string) ([]entities.User, error) {
	if strings.TrimSpace(emailFragment) == "" {
		return nil, ErrMissingRequiredFields
	}

	users, err := s.repository.Search(ctx, emailFragment, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

// UpdateUserRole - админский переключатель admin/user. Роль rider сюда не
// входит: она выдается только одобрением заявки райдера.
func (s *User) UpdateUserRole(ctx context.Context, id int64, role entities.UserRoleType) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	if role != entities.RoleAdmin && role != entities.RoleUser {
		return ErrInvalidRole
	}

	matched, err := s.repository.UpdateRoleByID(ctx, id, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PromoteToRider вызывается движком назначений при одобрении райдера.
func (s *User) PromoteToRider(ctx context.Context, email string) error {
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	matched, err := s.repository.UpdateRoleByEmail(ctx, strings.ToLower(email), entities.RoleRider)
	if err != nil {
		return fmt.Errorf("promote user to rider: %w", err)
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PromoteApprovedRiders - массовая версия для фоновой сверки.
func (s *User) PromoteApprovedRiders(ctx context.Context) (int64, error) {
	promoted, err := s.repository.PromoteDriftedRiders(ctx)
	if err != nil {
		return 0, fmt.Errorf("promote approved riders: %w", err)
	}
	return promoted, nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

package rider

import (
	"context"
	"fmt"
	"time"

	"swiftdrop/internal/entities"
)

type Rider struct {
	repository  Repository
	parcels     ParcelRepository
	userService UserService
	txManager   TxManager
}

func New(
	repository Repository,
	parcels ParcelRepository,
	userService UserService,
	txManager TxManager,
) *Rider {
	return &Rider{
		repository:  repository,
		parcels:     parcels,
		userService: userService,
		txManager:   txManager,
	}
}

func (s *Rider) CreateRider(ctx context.Context, riderModify entities.RiderModify) (int64, error) {
	if riderModify.Name == nil ||
		riderModify.Email == nil ||
		riderModify.Contact == nil ||
		riderModify.Warehouse == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*riderModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*riderModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidContact(*riderModify.Contact) {
		return 0, ErrInvalidContact
	}
	if !isValidWarehouse(*riderModify.Warehouse) {
		return 0, ErrInvalidWarehouse
	}

	// заявка всегда стартует в pending, что бы ни прислал клиент
	pending := entities.RiderPending
	riderModify.Status = &pending

	id, err := s.repository.Create(ctx, riderModify)
	if err != nil {
		return 0, fmt.Errorf("create rider: %w", err)
	}
	return id, nil
}

func (s *Rider) GetRider(ctx context.Context, id int64) (*entities.Rider, error) {
	if id <= 0 {
		return nil, ErrInvalidRiderID
	}

	riderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return riderEntity, nil
}

func (s *Rider) ListRidersByStatus(ctx context.Context, status entities.RiderStatusType) ([]entities.Rider, error) {
	riders, err := s.repository.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list riders by status: %w", err)
	}
	return riders, nil
}

// ListAvailableRiders матчит только по домашнему складу. Фильтрация по
// статусу active остается на вызывающей стороне.
func (s *Rider) ListAvailableRiders(ctx context.Context, warehouse string) ([]entities.Rider, error) {
	if !isValidWarehouse(warehouse) {
		return nil, ErrInvalidWarehouse
	}

	riders, err := s.repository.ListByWarehouse(ctx, warehouse)
	if err != nil {
		return nil, fmt.Errorf("list available riders: %w", err)
	}
	return riders, nil
}

// AssignRider назначает райдера на ожидающую посылку: снапшот данных
// райдера на посылке и перевод статусов выполняются одной транзакцией.
// Если посылка уже назначена или отсутствует, матч нулевой и статус
// райдера не меняется.
func (s *Rider) AssignRider(ctx context.Context, parcelID, riderID int64) (*entities.RiderAssignment, error) {
	if parcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}

	riderEntity, err := s.repository.GetByID(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("get rider for assignment: %w", err)
	}

	assignment := entities.RiderAssignment{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		assignedAt := time.Now().UTC()

		matched, err := s.parcels.AssignRider(ctx, parcelID, riderEntity, assignedAt)
		if err != nil {
			return fmt.Errorf("assign rider to parcel: %w", err)
		}
		if matched == 0 {
			return ErrParcelNotFound
		}

		assignedStatus := entities.RiderAssigned
		updatedRider, err := s.repository.UpdateStatus(ctx, riderID, assignedStatus)
		if err != nil {
			return fmt.Errorf("update rider status: %w", err)
		}

		assignment = entities.RiderAssignment{
			ParcelID:   parcelID,
			RiderID:    updatedRider.ID,
			RiderName:  updatedRider.Name,
			RiderEmail: updatedRider.Email,
			AssignedAt: assignedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateRiderApproval меняет статус заявки райдера. Одобрение дополнительно
// повышает роль пользователя до rider; это второй шаг без общей транзакции,
// его провал возвращается как ErrRoleSyncPending поверх успешного первого.
func (s *Rider) UpdateRiderApproval(ctx context.Context, riderID int64, status entities.RiderStatusType) (*entities.Rider, error) {
	if riderID <= 0 {
		return nil, ErrInvalidRiderID
	}
	if !isValidApprovalStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.UpdateStatus(ctx, riderID, status)
	if err != nil {
		return nil, fmt.Errorf("update rider approval: %w", err)
	}

	if status == entities.RiderActive {
		if err := s.userService.PromoteToRider(ctx, updated.Email); err != nil {
			return updated, fmt.Errorf("%w: %w", ErrRoleSyncPending, err)
		}
	}
	return updated, nil
}

// SyncRiderState - фоновая сверка: освобождает райдеров без активных
// посылок и доводит роли пользователей, одобренных как райдеры.
func (s *Rider) SyncRiderState(ctx context.Context) (released, promoted int64, err error) {
	released, err = s.repository.ReleaseIdleAssigned(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("release idle assigned riders: %w", err)
	}

	promoted, err = s.userService.PromoteApprovedRiders(ctx)
	if err != nil {
		return released, 0, fmt.Errorf("promote approved riders: %w", err)
	}

	return released, promoted, nil
}

func (s *Rider) AssignedParcels(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.parcels.ListByRiderAndStatuses(ctx, riderEmail, []entities.DeliveryStatusType{
		entities.DeliveryRiderAssigned,
		entities.DeliveryInTransit,
	})
	if err != nil {
		return nil, fmt.Errorf("list assigned parcels: %w", err)
	}
	return parcels, nil
}

func (s *Rider) CompletedParcels(ctx context.Context, riderEmail string) ([]entities.Parcel, error) {
	if !isValidEmail(riderEmail) {
		return nil, ErrInvalidEmail
	}

	parcels, err := s.parcels.ListByRiderAndStatuses(ctx, riderEmail, []entities.DeliveryStatusType{
		entities.DeliveryDelivered,
		entities.DeliveryServiceCenterDelivered,
	})
	if err != nil {
		return nil, fmt.Errorf("list completed parcels: %w", err)
	}
	return parcels, nil
}

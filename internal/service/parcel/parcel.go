package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"swiftdrop/internal/entities"
)

type Parcel struct {
	repository      Repository
	payments        PaymentRepository
	tracking        TrackingRepository
	trackingNumbers TrackingNumberFactory
}

func New(
	repository Repository,
	payments PaymentRepository,
	tracking TrackingRepository,
	trackingNumbers TrackingNumberFactory,
) *Parcel {
	return &Parcel{
		repository:      repository,
		payments:        payments,
		tracking:        tracking,
		trackingNumbers: trackingNumbers,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.Title == nil ||
		parcelModify.CreatedBy == nil ||
		parcelModify.Cost == nil ||
		parcelModify.OriginWarehouse == nil ||
		parcelModify.DestinationWarehouse == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidEmail(*parcelModify.CreatedBy) {
		return nil, ErrInvalidEmail
	}
	if !isValidCost(*parcelModify.Cost) {
		return nil, ErrInvalidCost
	}
	if !isValidWarehouse(*parcelModify.OriginWarehouse) ||
		!isValidWarehouse(*parcelModify.DestinationWarehouse) {
		return nil, ErrInvalidWarehouse
	}

	trackingID := s.trackingNumbers.NewTrackingID()

	created, err := s.repository.Create(ctx, parcelModify, trackingID)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}
	return created, nil
}

func (s *Parcel) ListParcels(ctx context.Context, filter entities.ParcelFilter) ([]entities.Parcel, error) {
	parcels, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	return parcels, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	if id <= 0 {
		return nil, ErrInvalidParcelID
	}

	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcelEntity, nil
}

// DeleteParcel идемпотентен: удаление несуществующего id возвращает ноль
// удаленных строк, а не ошибку.
func (s *Parcel) DeleteParcel(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidParcelID
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}
	return deleted, nil
}

// UpdateDeliveryStatus двигает машину состояний вперед. Разрешены только
// переходы rider_assigned -> in_transit и in_transit -> терминальный статус,
// и только для райдера, назначенного на посылку.
func (s *Parcel) UpdateDeliveryStatus(ctx context.Context, id int64, newStatus entities.DeliveryStatusType, actingRiderEmail string) (*entities.Parcel, error) {
	if id <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidUpdatableStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel for status update: %w", err)
	}

	if parcelEntity.RiderEmail == "" || parcelEntity.RiderEmail != actingRiderEmail {
		return nil, ErrNotAssignedRider
	}

	if !parcelEntity.DeliveryStatus.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%s -> %s: %w", parcelEntity.DeliveryStatus, newStatus, ErrInvalidTransition)
	}

	now := time.Now().UTC()
	var pickedAt, deliveredAt *time.Time
	switch newStatus {
	case entities.DeliveryInTransit:
		pickedAt = &now
	case entities.DeliveryDelivered:
		deliveredAt = &now
	}

	matched, err := s.repository.UpdateDeliveryStatus(ctx, id, parcelEntity.DeliveryStatus, newStatus, pickedAt, deliveredAt)
	if err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}
	if matched == 0 {
		// конкурирующий переход успел раньше
		return nil, fmt.Errorf("%s -> %s: %w", parcelEntity.DeliveryStatus, newStatus, ErrInvalidTransition)
	}

	updated, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload parcel: %w", err)
	}
	return updated, nil
}

// RecordPayment выполняется в два шага без общей транзакции: сначала
// условная пометка посылки оплаченной, затем вставка строки платежа.
// Если второй шаг упал, первый не откатывается - consumer событий оплаты
// доведет запись ретраем (ErrAlreadyPaid там означает "шаг (a) уже сделан").
func (s *Parcel) RecordPayment(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	if paymentModify.ParcelID == nil ||
		paymentModify.Amount == nil ||
		paymentModify.TransactionID == nil ||
		paymentModify.PayerEmail == nil ||
		paymentModify.Method == nil {
		return nil, ErrMissingRequiredFields
	}
	if *paymentModify.ParcelID <= 0 {
		return nil, ErrInvalidParcelID
	}
	if !isValidEmail(*paymentModify.PayerEmail) {
		return nil, ErrInvalidEmail
	}

	matched, err := s.repository.MarkPaid(ctx, *paymentModify.ParcelID)
	if err != nil {
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}
	if matched == 0 {
		return nil, ErrAlreadyPaid
	}

	paymentEntity, err := s.payments.Create(ctx, paymentModify)
	if err != nil {
		return nil, fmt.Errorf("insert payment record: %w: %w", ErrPaymentSyncPending, err)
	}
	return paymentEntity, nil
}

// SyncPaymentRecord - путь досведения из consumer'а событий оплаты: шаг (a)
// здесь идемпотентен (посылка может быть уже помечена оплаченной REST-путем),
// а дубликат строки платежа отсекается уникальностью transaction_id.
func (s *Parcel) SyncPaymentRecord(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	if paymentModify.ParcelID == nil ||
		paymentModify.Amount == nil ||
		paymentModify.TransactionID == nil ||
		paymentModify.PayerEmail == nil ||
		paymentModify.Method == nil {
		return nil, ErrMissingRequiredFields
	}
	if *paymentModify.ParcelID <= 0 {
		return nil, ErrInvalidParcelID
	}

	if _, err := s.repository.MarkPaid(ctx, *paymentModify.ParcelID); err != nil {
		return nil, fmt.Errorf("mark parcel paid: %w", err)
	}

	paymentEntity, err := s.payments.Create(ctx, paymentModify)
	if err != nil {
		if errors.Is(err, ErrDuplicateTransaction) {
			return nil, ErrDuplicateTransaction
		}
		return nil, fmt.Errorf("insert payment record: %w", err)
	}
	return paymentEntity, nil
}

// Cashout помечает выплату райдеру. Повторный вызов - no-op.
// Терминальность статуса доставки намеренно не проверяется.
func (s *Parcel) Cashout(ctx context.Context, id int64, actingRiderEmail string) (*entities.Parcel, error) {
	if id <= 0 {
		return nil, ErrInvalidParcelID
	}

	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel for cashout: %w", err)
	}

	if parcelEntity.RiderEmail == "" || parcelEntity.RiderEmail != actingRiderEmail {
		return nil, ErrNotAssignedRider
	}

	_, err = s.repository.MarkCashedOut(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark cashed out: %w", err)
	}

	updated, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload parcel: %w", err)
	}
	return updated, nil
}

func (s *Parcel) RecordTrackingEvent(ctx context.Context, trackingID, status, note string) (*entities.TrackingEvent, error) {
	if strings.TrimSpace(trackingID) == "" || strings.TrimSpace(status) == "" {
		return nil, ErrMissingRequiredFields
	}

	event := entities.TrackingEvent{
		TrackingID: trackingID,
		Status:     status,
		Note:       note,
		RecordedAt: time.Now().UTC(),
	}

	created, err := s.tracking.Append(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("append tracking event: %w", err)
	}
	return created, nil
}

func (s *Parcel) ListTrackingEvents(ctx context.Context, trackingID string) ([]entities.TrackingEvent, error) {
	if strings.TrimSpace(trackingID) == "" {
		return nil, ErrMissingRequiredFields
	}

	events, err := s.tracking.ListByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return events, nil
}

func (s *Parcel) ListPayments(ctx context.Context, payerEmail string) ([]entities.Payment, error) {
	if !isValidEmail(payerEmail) {
		return nil, ErrInvalidEmail
	}

	payments, err := s.payments.ListByPayer(ctx, payerEmail)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *Parcel) DeliveryStatusCounts(ctx context.Context) ([]entities.DeliveryStatusCount, error) {
	counts, err := s.repository.CountByDeliveryStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by delivery status: %w", err)
	}
	return counts, nil
}

// isValidUpdatableStatus: назначение райдера выставляет rider_assigned
// отдельным путем, руками через update можно двигать только дальше.
func isValidUpdatableStatus(status entities.DeliveryStatusType) bool {
	switch status {
	case entities.DeliveryInTransit,
		entities.DeliveryDelivered,
		entities.DeliveryServiceCenterDelivered:
		return true
	default:
		return false
	}
}

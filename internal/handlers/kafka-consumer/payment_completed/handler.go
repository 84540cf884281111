package payment_completed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"swiftdrop/internal/entities"
	parcelservice "swiftdrop/internal/service/parcel"
	"swiftdrop/pkg/logger"
)

type Handler struct {
	parcelService            Service
	mailer                   Mailer
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

// mailer может быть nil, если SMTP отключен конфигом.
func New(log handlerLogger, parcelService Service, mailer Mailer, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
		mailer:                   mailer,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

type completedEvent struct {
	ParcelID      int64       `json:"parcelId"`
	Amount        json.Number `json:"amount"`
	TransactionID string      `json:"transactionId"`
	PayerEmail    string      `json:"payerEmail"`
	Method        string      `json:"method"`
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event completedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("parcel", event.ParcelID),
		logger.NewField("transaction", event.TransactionID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.completed processing")

	amount, err := decimal.NewFromString(event.Amount.String())
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("payment.completed handler received bad amount")
		sess.MarkMessage(message, "")
		return false
	}

	paymentModify := entities.PaymentModify{
		ParcelID:      &event.ParcelID,
		Amount:        &amount,
		TransactionID: &event.TransactionID,
		PayerEmail:    &event.PayerEmail,
		Method:        &event.Method,
	}

	payment, err := h.parcelService.SyncPaymentRecord(ctx, paymentModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcelservice.ErrDuplicateTransaction):
			// событие уже обработано, ничего доводить не надо
			msgLog.Info("payment.completed already recorded")

		case errors.Is(err, parcelservice.ErrMissingRequiredFields),
			errors.Is(err, parcelservice.ErrInvalidParcelID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.completed handler malformed event")

		default:
			// не помечаем сообщение: пусть придет еще раз
			msgLog.With(
				logger.NewField("error", err),
			).Error("payment.completed handler failed to sync payment")
			return false
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.completed: processed")
	h.sendReceipt(payment)

	sess.MarkMessage(message, "")
	return false
}

// sendReceipt - best effort, ошибка отправки не влияет на обработку события.
func (h *Handler) sendReceipt(payment *entities.Payment) {
	if h.mailer == nil {
		return
	}

	body := fmt.Sprintf(
		"Payment of %s for parcel %d was received (transaction %s).",
		payment.Amount.String(), payment.ParcelID, payment.TransactionID,
	)
	if err := h.mailer.Send(payment.PayerEmail, "SwiftDrop payment received", body); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("payer", payment.PayerEmail),
		).Warn("payment.completed receipt email failed")
	}
}

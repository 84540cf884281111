//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_completed_test
package payment_completed

import (
	"context"

	"swiftdrop/internal/entities"
	"swiftdrop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SyncPaymentRecord(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error)
}

type Mailer interface {
	Send(to, subject, body string) error
}

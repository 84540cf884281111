//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_intent_post_test
package payment_intent_post

import (
	"context"

	"swiftdrop/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error)
}

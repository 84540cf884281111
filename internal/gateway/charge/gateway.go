package charge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "swiftdrop/pkg/retrier"
	"swiftdrop/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "charge-authority"

	createIntentPath = "/v1/payment_intents"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// maxErrorBodySize ограничивает чтение тела ошибки провайдера.
const maxErrorBodySize = 4 << 10

type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("charge authority status %d: %s", e.Code, e.Body)
}

// ChargeGateway ходит в платежного провайдера за payment intent.
// Сам платеж проводится на клиенте, бекенд только создает intent
// и получает client secret.
type ChargeGateway struct {
	client    httpDoer
	retrier   retrier
	baseURL   string
	secretKey string
}

func New(client httpDoer, baseURL, secretKey string) *ChargeGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &ChargeGateway{
		client:    client,
		retrier:   backoff_adapter.New(retryConfig),
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreatePaymentIntent создает intent на amountMinorUnits минимальных единиц
// валюты и возвращает client secret для подтверждения платежа на клиенте.
func (g *ChargeGateway) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	body, err := json.Marshal(createIntentRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
	})
	if err != nil {
		return "", fmt.Errorf("gateway charge, marshal intent: %w", err)
	}

	var intent createIntentResponse

	err = g.executeWithMetrics(ctx, "CreatePaymentIntent", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+createIntentPath, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.secretKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			return &statusError{Code: resp.StatusCode, Body: string(errBody)}
		}

		return json.NewDecoder(resp.Body).Decode(&intent)
	})
	if err != nil {
		return "", fmt.Errorf("gateway charge, create payment intent: %w", err)
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("gateway charge, empty client secret in response")
	}

	return intent.ClientSecret, nil
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// транспортная ошибка, пробуем еще раз
		return true
	}

	switch {
	case statusErr.Code == http.StatusTooManyRequests:
		return true
	case statusErr.Code >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func (g *ChargeGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "transport_error"
}

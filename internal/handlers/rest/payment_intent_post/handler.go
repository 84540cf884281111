package payment_intent_post

import (
	"encoding/json"
	"net/http"

	"swiftdrop/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	gateway  Gateway
	currency string
}

func New(log handlerLogger, gateway Gateway, currency string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		gateway:  gateway,
		currency: currency,
	}
}

type intentRequest struct {
	// сумма в минимальных единицах валюты
	Amount int64 `json:"amount"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var intentDTO intentRequest
	err := json.NewDecoder(r.Body).Decode(&intentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if intentDTO.Amount <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(r.Context(), intentDTO.Amount, h.currency)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("amount", intentDTO.Amount),
		).Error("create payment intent")
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(intentResponse{
		ClientSecret: clientSecret,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package payments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/handlers/rest/dto"
	"swiftdrop/internal/pkg/middlewares/auth"
	"swiftdrop/internal/service/parcel"
	"swiftdrop/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	// чужую историю платежей смотреть нельзя
	if email != auth.EmailFromContext(r.Context()) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewPaymentList(payments))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

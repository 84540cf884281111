package rider_completed_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/handlers/rest/dto"
	"swiftdrop/internal/service/rider"
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

	parcels, err := h.service.CompletedParcels(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewParcelList(parcels))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package riders_available_get

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
	warehouse := r.URL.Query().Get("warehouse")

	riders, err := h.service.ListAvailableRiders(r.Context(), warehouse)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidWarehouse):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewRiderList(riders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

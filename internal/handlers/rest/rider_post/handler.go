package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/entities"
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

type riderCreateRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Warehouse string `json:"warehouse"`
}

type riderCreateResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var riderCreateDTO riderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&riderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModifyEntity := entities.RiderModify{
		Name:      &riderCreateDTO.Name,
		Email:     &riderCreateDTO.Email,
		Contact:   &riderCreateDTO.Contact,
		Warehouse: &riderCreateDTO.Warehouse,
	}

	id, err := h.service.CreateRider(r.Context(), riderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidName),
			errors.Is(err, rider.ErrInvalidEmail),
			errors.Is(err, rider.ErrInvalidContact),
			errors.Is(err, rider.ErrInvalidWarehouse):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := riderCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

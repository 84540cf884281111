package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"swiftdrop/internal/entities"
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

type parcelCreateRequest struct {
	Title                string      `json:"title"`
	Cost                 json.Number `json:"cost"`
	OriginWarehouse      string      `json:"origin_warehouse"`
	DestinationWarehouse string      `json:"destination_warehouse"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var parcelCreateDTO parcelCreateRequest
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cost, err := decimal.NewFromString(parcelCreateDTO.Cost.String())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// отправитель - всегда аутентифицированный пользователь
	createdBy := auth.EmailFromContext(r.Context())

	parcelModifyEntity := entities.ParcelModify{
		Title:                &parcelCreateDTO.Title,
		CreatedBy:            &createdBy,
		Cost:                 &cost,
		OriginWarehouse:      &parcelCreateDTO.OriginWarehouse,
		DestinationWarehouse: &parcelCreateDTO.DestinationWarehouse,
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidEmail),
			errors.Is(err, parcel.ErrInvalidCost),
			errors.Is(err, parcel.ErrInvalidWarehouse):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewParcel(parcelEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

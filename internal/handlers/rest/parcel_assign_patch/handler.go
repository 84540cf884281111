package parcel_assign_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
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

type assignRequest struct {
	RiderID int64 `json:"riderId"`
}

type assignResponse struct {
	ParcelID   int64     `json:"parcelId"`
	RiderID    int64     `json:"riderId"`
	RiderName  string    `json:"riderName"`
	RiderEmail string    `json:"riderEmail"`
	AssignedAt time.Time `json:"assignedAt"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	parcelID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var assignDTO assignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignRider(r.Context(), parcelID, assignDTO.RiderID)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidParcelID),
			errors.Is(err, rider.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrParcelNotFound):
			// посылки нет либо она уже назначена
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := assignResponse{
		ParcelID:   assignment.ParcelID,
		RiderID:    assignment.RiderID,
		RiderName:  assignment.RiderName,
		RiderEmail: assignment.RiderEmail,
		AssignedAt: assignment.AssignedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

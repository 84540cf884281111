package tracking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/handlers/rest/dto"
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

type trackingEventRequest struct {
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	Note       string `json:"note"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var eventDTO trackingEventRequest
	err := json.NewDecoder(r.Body).Decode(&eventDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := h.service.RecordTrackingEvent(r.Context(), eventDTO.TrackingID, eventDTO.Status, eventDTO.Note)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewTrackingEvent(event))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

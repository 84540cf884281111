package stats_rider_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/service/stats"
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

type riderStatsResponse struct {
	TotalParcels  int64  `json:"totalParcels"`
	Delivered     int64  `json:"delivered"`
	Pending       int64  `json:"pending"`
	TotalEarnings string `json:"totalEarnings"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	riderStats, err := h.service.RiderStats(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := riderStatsResponse{
		TotalParcels:  riderStats.TotalParcels,
		Delivered:     riderStats.Delivered,
		Pending:       riderStats.Pending,
		TotalEarnings: riderStats.TotalEarnings.String(),
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

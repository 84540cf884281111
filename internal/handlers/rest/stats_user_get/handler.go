package stats_user_get

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

type userStatsResponse struct {
	TotalParcels     int64  `json:"totalParcels"`
	DeliveredParcels int64  `json:"deliveredParcels"`
	TotalSpent       string `json:"totalSpent"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	userStats, err := h.service.UserStats(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := userStatsResponse{
		TotalParcels:     userStats.TotalParcels,
		DeliveredParcels: userStats.DeliveredParcels,
		TotalSpent:       userStats.TotalSpent.String(),
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

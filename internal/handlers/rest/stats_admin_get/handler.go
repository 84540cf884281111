package stats_admin_get

import (
	"encoding/json"
	"net/http"

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

type adminStatsResponse struct {
	TotalUsers     int64  `json:"totalUsers"`
	TotalParcels   int64  `json:"totalParcels"`
	TotalDelivered int64  `json:"totalDelivered"`
	TotalRevenue   string `json:"totalRevenue"`
	TotalProfit    string `json:"totalProfit"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	adminStats, err := h.service.AdminStats(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := adminStatsResponse{
		TotalUsers:     adminStats.TotalUsers,
		TotalParcels:   adminStats.TotalParcels,
		TotalDelivered: adminStats.TotalDelivered,
		TotalRevenue:   adminStats.TotalRevenue.String(),
		TotalProfit:    adminStats.TotalProfit.String(),
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

package parcels_get

import (
	"encoding/json"
	"net/http"

	"swiftdrop/internal/entities"
	"swiftdrop/internal/handlers/rest/dto"
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
	query := r.URL.Query()

	var filter entities.ParcelFilter
	if email := query.Get("email"); email != "" {
		filter.CreatedBy = &email
	}
	if paymentStatus := query.Get("payment_status"); paymentStatus != "" {
		status := entities.PaymentStatusType(paymentStatus)
		filter.PaymentStatus = &status
	}
	if deliveryStatus := query.Get("delivery_status"); deliveryStatus != "" {
		status := entities.DeliveryStatusType(deliveryStatus)
		filter.DeliveryStatus = &status
	}

	parcels, err := h.service.ListParcels(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
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

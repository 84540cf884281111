package payment_post

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

type paymentCreateRequest struct {
	ParcelID      int64       `json:"parcelId"`
	Amount        json.Number `json:"amount"`
	TransactionID string      `json:"transactionId"`
	Method        string      `json:"method"`
}

type paymentPendingResponse struct {
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var paymentDTO paymentCreateRequest
	err := json.NewDecoder(r.Body).Decode(&paymentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(paymentDTO.Amount.String())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payerEmail := auth.EmailFromContext(r.Context())

	paymentModifyEntity := entities.PaymentModify{
		ParcelID:      &paymentDTO.ParcelID,
		Amount:        &amount,
		TransactionID: &paymentDTO.TransactionID,
		PayerEmail:    &payerEmail,
		Method:        &paymentDTO.Method,
	}

	paymentEntity, err := h.service.RecordPayment(r.Context(), paymentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrAlreadyPaid):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, parcel.ErrPaymentSyncPending):
			// посылка уже помечена оплаченной, строку платежа доведет
			// consumer событий оплаты
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("parcel_id", paymentDTO.ParcelID),
			).Error("payment accepted but record insert failed")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusAccepted)
			encodeErr := json.NewEncoder(w).Encode(paymentPendingResponse{
				Message: "payment accepted, record pending",
			})
			if encodeErr != nil {
				h.log.With(
					logger.NewField("error", encodeErr),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewPayment(paymentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftdrop/internal/service/user"
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

type userCreateRequest struct {
	Email string `json:"email"`
}

type userCreateResponse struct {
	Created bool `json:"created"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var userCreateDTO userCreateRequest
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateUser(r.Context(), userCreateDTO.Email)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		// повторная регистрация того же email - no-op успех
		w.WriteHeader(http.StatusOK)
	}
	err = json.NewEncoder(w).Encode(userCreateResponse{
		Created: created,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

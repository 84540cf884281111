package user_role_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/service/user"
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

type roleUpdateRequest struct {
	Role string `json:"role"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var roleDTO roleUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&roleDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateUserRole(r.Context(), id, entities.UserRoleType(roleDTO.Role))
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

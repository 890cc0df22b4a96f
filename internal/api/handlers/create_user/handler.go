package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/users"
	"github.com/m04kA/SMC-CarRentalService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUser        = "некорректные данные пользователя: нужны имя, email, номер и срок действия удостоверения (YYYY-MM-DD)"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			h.logger.Warn("POST /users - Invalid user: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUser)
			return
		}
		h.logger.Error("POST /users - Failed to create user: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}

package create_table

import (
	"errors"
	"net/http"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

const msgInvalidRequestBody = "Please fill in required fields. Can not submit empty form."

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.Envelope
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.Data)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidPayload):
			h.logger.Warn("POST /tables - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tables - Failed to create table: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: table_id=%d", result.ID)
	handlers.RespondData(w, http.StatusCreated, result)
}

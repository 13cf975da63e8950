package create_reservation

import (
	"errors"
	"net/http"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	createReservation "github.com/periodictables/PT-ReservationService/internal/usecase/create_reservation"
	"github.com/periodictables/PT-ReservationService/internal/validation"
)

const msgInvalidRequestBody = "Please fill in required fields. Can not submit empty form."

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.Envelope
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createReservation.Request{Data: req.Data})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidPayload):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d", result.ID)
	handlers.RespondData(w, http.StatusCreated, result)
}

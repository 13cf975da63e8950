package list_reservations

import (
	"errors"
	"net/http"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	"github.com/periodictables/PT-ReservationService/internal/service/reservations"
	"github.com/periodictables/PT-ReservationService/internal/service/reservations/models"
)

const msgInvalidDateFilter = "The date filter must be in the YYYY-MM-DD format."

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /reservations?date=YYYY-MM-DD | mobile_number=STR
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{}

	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}
	if mobileNumber := r.URL.Query().Get("mobile_number"); mobileNumber != "" {
		req.MobileNumber = &mobileNumber
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDate):
			h.logger.Warn("GET /reservations - Invalid date filter")
			handlers.RespondBadRequest(w, msgInvalidDateFilter)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, result)
}

package seat_table

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/periodictables/PT-ReservationService/internal/api/handlers"
	seatTable "github.com/periodictables/PT-ReservationService/internal/usecase/seat_table"
)

const (
	msgInvalidRequestBody   = "Please fill in required fields. Can not submit empty form."
	msgMissingReservationID = "reservation_id must exist."
	msgTableOccupied        = "The table you selected is currently occupied."
	msgCapacityExceeded     = "The table you selected does not have the capacity to support your party."
	msgAlreadySeated        = "Reservation has already been seated."
	msgNotBooked            = "Only booked reservations may be seated."
)

type Handler struct {
	useCase SeatTableUseCase
	logger  Logger
}

func NewHandler(useCase SeatTableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /tables/{tableId}/seat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["tableId"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /tables/{id}/seat - Invalid table ID: %v", err)
		handlers.RespondNotFound(w, fmt.Sprintf("Table %s cannot be found.", idStr))
		return
	}

	var req handlers.Envelope
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id}/seat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &seatTable.Request{TableID: id, Data: req.Data})
	if err != nil {
		switch {
		case errors.Is(err, seatTable.ErrMissingReservationID):
			h.logger.Warn("PUT /tables/{id}/seat - Missing reservation_id: table_id=%d", id)
			handlers.RespondBadRequest(w, msgMissingReservationID)

		case errors.Is(err, seatTable.ErrReservationNotFound):
			h.logger.Warn("PUT /tables/{id}/seat - Reservation not found: table_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Reservation %v cannot be found.", req.Data["reservation_id"]))

		case errors.Is(err, seatTable.ErrTableNotFound):
			h.logger.Warn("PUT /tables/{id}/seat - Table not found: table_id=%d", id)
			handlers.RespondNotFound(w, fmt.Sprintf("Table %d cannot be found.", id))

		case errors.Is(err, seatTable.ErrTableOccupied):
			h.logger.Warn("PUT /tables/{id}/seat - Table occupied: table_id=%d", id)
			handlers.RespondBadRequest(w, msgTableOccupied)

		case errors.Is(err, seatTable.ErrCapacityExceeded):
			h.logger.Warn("PUT /tables/{id}/seat - Capacity exceeded: table_id=%d", id)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, seatTable.ErrAlreadySeated):
			h.logger.Warn("PUT /tables/{id}/seat - Reservation already seated: table_id=%d", id)
			handlers.RespondBadRequest(w, msgAlreadySeated)

		case errors.Is(err, seatTable.ErrNotBooked):
			h.logger.Warn("PUT /tables/{id}/seat - Reservation not booked: table_id=%d", id)
			handlers.RespondBadRequest(w, msgNotBooked)

		default:
			h.logger.Error("PUT /tables/{id}/seat - Failed to seat reservation: table_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tables/{id}/seat - Reservation seated successfully: table_id=%d", id)
	handlers.RespondData(w, http.StatusOK, result)
}

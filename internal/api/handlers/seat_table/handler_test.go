package seat_table

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seatTable "github.com/periodictables/PT-ReservationService/internal/usecase/seat_table"
)

type fakeUseCase struct {
	result *seatTable.Response
	err    error

	gotReq *seatTable.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *seatTable.Request) (*seatTable.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doSeatRequest(t *testing.T, uc *fakeUseCase, tableID, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/tables/{tableId}/seat", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/tables/"+tableID+"/seat", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestSeatHandlerSuccess(t *testing.T) {
	reservationID := int64(7)
	uc := &fakeUseCase{result: &seatTable.Response{ID: 2, Name: "#1", Capacity: 6, ReservationID: &reservationID}}

	w := doSeatRequest(t, uc, "2", `{"data":{"reservation_id":7}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(2), uc.gotReq.TableID)

	var body struct {
		Data struct {
			TableID       int64  `json:"table_id"`
			ReservationID *int64 `json:"reservation_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Data.TableID)
	require.NotNil(t, body.Data.ReservationID)
	assert.Equal(t, int64(7), *body.Data.ReservationID)
}

func TestSeatHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing reservation_id",
			err:        seatTable.ErrMissingReservationID,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "reservation_id must exist.",
		},
		{
			name:       "reservation not found",
			err:        seatTable.ErrReservationNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Reservation 7 cannot be found.",
		},
		{
			name:       "table not found",
			err:        seatTable.ErrTableNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Table 2 cannot be found.",
		},
		{
			name:       "table occupied",
			err:        seatTable.ErrTableOccupied,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "The table you selected is currently occupied.",
		},
		{
			name:       "capacity exceeded",
			err:        seatTable.ErrCapacityExceeded,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "The table you selected does not have the capacity to support your party.",
		},
		{
			name:       "already seated",
			err:        seatTable.ErrAlreadySeated,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Reservation has already been seated.",
		},
		{
			name:       "not booked",
			err:        seatTable.ErrNotBooked,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Only booked reservations may be seated.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}

			w := doSeatRequest(t, uc, "2", `{"data":{"reservation_id":7}}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

func TestSeatHandlerInvalidTableID(t *testing.T) {
	uc := &fakeUseCase{}

	w := doSeatRequest(t, uc, "abc", `{"data":{"reservation_id":7}}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Table abc cannot be found.", errorMessage(t, w))
	assert.Nil(t, uc.gotReq)
}

func TestSeatHandlerInvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	w := doSeatRequest(t, uc, "2", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.gotReq)
}

func TestSeatHandlerInternalError(t *testing.T) {
	uc := &fakeUseCase{err: seatTable.ErrInternal}

	w := doSeatRequest(t, uc, "2", `{"data":{"reservation_id":7}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong!", errorMessage(t, w))
}

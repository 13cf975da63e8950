package seat_table

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	reservationRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/reservation"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
	"github.com/periodictables/PT-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation

	statusUpdates map[int64]domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[int64]domain.ReservationStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table

	assignedTo map[int64]int64
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTableRepo) AssignReservation(_ context.Context, tableID, reservationID int64) error {
	if _, ok := f.tables[tableID]; !ok {
		return tableRepo.ErrTableNotFound
	}
	if f.assignedTo == nil {
		f.assignedTo = make(map[int64]int64)
	}
	f.assignedTo[tableID] = reservationID
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookedReservation(id int64, people int) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		FirstName:    "Morty",
		LastName:     "Smith",
		MobileNumber: "202-555-0164",
		Date:         time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		Time:         "18:00:00",
		People:       people,
		Status:       domain.StatusBooked,
	}
}

func freeTable(id int64, capacity int) *domain.Table {
	return &domain.Table{ID: id, Name: "#1", Capacity: capacity}
}

func newSeatFixture(reservation *domain.Reservation, table *domain.Table) (*UseCase, *fakeReservationRepo, *fakeTableRepo) {
	resRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}
	if reservation != nil {
		resRepo.reservations[reservation.ID] = reservation
	}
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{}}
	if table != nil {
		tblRepo.tables[table.ID] = table
	}
	return NewUseCase(resRepo, tblRepo, fakeTxManager{}, nopLogger{}), resRepo, tblRepo
}

func seatRequest(tableID int64, reservationID float64) *Request {
	return &Request{
		TableID: tableID,
		Data:    map[string]interface{}{"reservation_id": reservationID},
	}
}

func TestSeatTableSuccess(t *testing.T) {
	uc, resRepo, tblRepo := newSeatFixture(bookedReservation(7, 4), freeTable(2, 6))

	result, err := uc.Execute(context.Background(), seatRequest(2, 7))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSeated, resRepo.statusUpdates[7])
	assert.Equal(t, int64(7), tblRepo.assignedTo[2])

	require.NotNil(t, result.ReservationID)
	assert.Equal(t, int64(7), *result.ReservationID)
	assert.Equal(t, int64(2), result.ID)
}

func TestSeatTableMissingReservationID(t *testing.T) {
	uc, _, _ := newSeatFixture(bookedReservation(7, 4), freeTable(2, 6))

	tests := []struct {
		name string
		data map[string]interface{}
	}{
		{name: "nil payload", data: nil},
		{name: "empty payload", data: map[string]interface{}{}},
		{name: "zero id", data: map[string]interface{}{"reservation_id": float64(0)}},
		{name: "id is not a number", data: map[string]interface{}{"reservation_id": "7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{TableID: 2, Data: tt.data})
			assert.ErrorIs(t, err, ErrMissingReservationID)
		})
	}
}

func TestSeatTableReservationNotFound(t *testing.T) {
	uc, _, _ := newSeatFixture(nil, freeTable(2, 6))

	_, err := uc.Execute(context.Background(), seatRequest(2, 999))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestSeatTableTableNotFound(t *testing.T) {
	uc, _, _ := newSeatFixture(bookedReservation(7, 4), nil)

	_, err := uc.Execute(context.Background(), seatRequest(99, 7))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestSeatTableOccupied(t *testing.T) {
	table := freeTable(2, 6)
	table.ReservationID = ptr.Ptr(int64(3))
	uc, resRepo, _ := newSeatFixture(bookedReservation(7, 4), table)

	_, err := uc.Execute(context.Background(), seatRequest(2, 7))
	assert.ErrorIs(t, err, ErrTableOccupied)
	assert.Empty(t, resRepo.statusUpdates)
}

func TestSeatTableCapacityExceeded(t *testing.T) {
	uc, resRepo, tblRepo := newSeatFixture(bookedReservation(7, 8), freeTable(2, 6))

	_, err := uc.Execute(context.Background(), seatRequest(2, 7))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, resRepo.statusUpdates)
	assert.Empty(t, tblRepo.assignedTo)
}

func TestSeatTableWrongReservationStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.ReservationStatus
		wantErr error
	}{
		{name: "already seated", status: domain.StatusSeated, wantErr: ErrAlreadySeated},
		{name: "finished", status: domain.StatusFinished, wantErr: ErrNotBooked},
		{name: "cancelled", status: domain.StatusCancelled, wantErr: ErrNotBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := bookedReservation(7, 4)
			reservation.Status = tt.status
			uc, _, tblRepo := newSeatFixture(reservation, freeTable(2, 6))

			_, err := uc.Execute(context.Background(), seatRequest(2, 7))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, tblRepo.assignedTo)
		})
	}
}

package finish_table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
	"github.com/periodictables/PT-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	statusUpdates map[int64]domain.ReservationStatus
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[int64]domain.ReservationStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeTableRepo struct {
	tables map[int64]*domain.Table

	cleared []int64
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTableRepo) ClearReservation(_ context.Context, tableID int64) error {
	if _, ok := f.tables[tableID]; !ok {
		return tableRepo.ErrTableNotFound
	}
	f.cleared = append(f.cleared, tableID)
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

func TestFinishTableSuccess(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{
		2: {ID: 2, Name: "#1", Capacity: 6, ReservationID: ptr.Ptr(int64(7))},
	}}
	uc := NewUseCase(resRepo, tblRepo, fakeTxManager{}, nopLogger{})

	result, err := uc.Execute(context.Background(), &Request{TableID: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFinished, resRepo.statusUpdates[7])
	assert.Equal(t, []int64{2}, tblRepo.cleared)
	assert.Nil(t, result.ReservationID)
	assert.Equal(t, int64(2), result.ID)
}

func TestFinishTableNotFound(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, &fakeTableRepo{tables: map[int64]*domain.Table{}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TableID: 99})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestFinishTableNotOccupied(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{
		2: {ID: 2, Name: "#1", Capacity: 6},
	}}
	uc := NewUseCase(resRepo, tblRepo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{TableID: 2})
	assert.ErrorIs(t, err, ErrTableNotOccupied)
	assert.Empty(t, resRepo.statusUpdates)
	assert.Empty(t, tblRepo.cleared)
}

package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	tableRepo "github.com/periodictables/PT-ReservationService/internal/infra/storage/table"
	"github.com/periodictables/PT-ReservationService/internal/validation"
	"github.com/periodictables/PT-ReservationService/pkg/ptr"
)

type fakeTableRepo struct {
	tables map[int64]*domain.Table

	created *domain.Table
	deleted []int64
}

func (f *fakeTableRepo) Create(_ context.Context, t *domain.Table) (*domain.Table, error) {
	created := *t
	created.ID = 11
	f.created = &created
	return &created, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	t, ok := f.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTableRepo) List(_ context.Context) ([]*domain.Table, error) {
	result := make([]*domain.Table, 0, len(f.tables))
	for _, t := range f.tables {
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeTableRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.tables[id]; !ok {
		return tableRepo.ErrTableNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(tables ...*domain.Table) (*Service, *fakeTableRepo, *fakeReservationRepo) {
	tblRepo := &fakeTableRepo{tables: map[int64]*domain.Table{}}
	for _, t := range tables {
		tblRepo.tables[t.ID] = t
	}
	resRepo := &fakeReservationRepo{}
	return NewService(tblRepo, resRepo, fakeTxManager{}, nopLogger{}), tblRepo, resRepo
}

func TestCreateTable(t *testing.T) {
	svc, repo, _ := newFixture()

	result, err := svc.Create(context.Background(), map[string]interface{}{
		"table_name": "Bar #1",
		"capacity":   float64(6),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), result.ID)
	assert.Equal(t, "Bar #1", result.Name)
	assert.Equal(t, 6, result.Capacity)
	assert.Nil(t, result.ReservationID)
	assert.Nil(t, repo.created.ReservationID)
}

func TestCreateTableValidationFailure(t *testing.T) {
	svc, repo, _ := newFixture()

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"table_name": "A",
		"capacity":   float64(6),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrInvalidPayload)
	assert.Equal(t, "The table_name entered must be greater than one character.", err.Error())
	assert.Nil(t, repo.created)
}

func TestListTables(t *testing.T) {
	svc, _, _ := newFixture(
		&domain.Table{ID: 1, Name: "#1", Capacity: 4},
		&domain.Table{ID: 2, Name: "#2", Capacity: 2},
	)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestDeleteFreeTable(t *testing.T) {
	svc, repo, resRepo := newFixture(&domain.Table{ID: 2, Name: "#1", Capacity: 4})

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, []int64{2}, repo.deleted)
	assert.Empty(t, resRepo.statusUpdates)
}

func TestDeleteOccupiedTableFinishesReservation(t *testing.T) {
	svc, repo, resRepo := newFixture(&domain.Table{
		ID:            2,
		Name:          "#1",
		Capacity:      4,
		ReservationID: ptr.Ptr(int64(7)),
	})

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, domain.StatusFinished, resRepo.statusUpdates[7])
	assert.Equal(t, []int64{2}, repo.deleted)
}

func TestDeleteTableNotFound(t *testing.T) {
	svc, _, _ := newFixture()

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrTableNotFound)
}

package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/periodictables/PT-ReservationService/internal/domain"
	"github.com/periodictables/PT-ReservationService/pkg/dbmetrics"
	"github.com/periodictables/PT-ReservationService/pkg/psqlbuilder"
)

var tableColumns = []string{
	"table_id",
	"table_name",
	"capacity",
	"reservation_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со столиками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый столик. Столик создается свободным.
func (r *Repository) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns("table_name", "capacity", "reservation_id").
		Values(t.Name, t.Capacity, t.ReservationID).
		Suffix("RETURNING table_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает столик по ID.
// Внутри транзакции блокирует строку (FOR UPDATE) - это используется
// при посадке, завершении обслуживания и удалении занятого столика.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"table_id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает все столики, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		OrderBy("table_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tables = append(tables, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}

// AssignReservation занимает столик бронированием
func (r *Repository) AssignReservation(ctx context.Context, tableID, reservationID int64) error {
	return r.setReservation(ctx, "AssignReservation", tableID, &reservationID)
}

// ClearReservation освобождает столик
func (r *Repository) ClearReservation(ctx context.Context, tableID int64) error {
	return r.setReservation(ctx, "ClearReservation", tableID, nil)
}

func (r *Repository) setReservation(ctx context.Context, op string, tableID int64, reservationID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("reservation_id", reservationID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"table_id": tableID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

// Delete удаляет столик
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tables").
		Where(squirrel.Eq{"table_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var t domain.Table
	var reservationID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Capacity,
		&reservationID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reservationID.Valid {
		t.ReservationID = &reservationID.Int64
	}
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

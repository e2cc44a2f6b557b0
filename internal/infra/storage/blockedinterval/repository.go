package blockedinterval

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/pkg/dbmetrics"
	"github.com/BookABite/reservation-service/pkg/psqlbuilder"
)

// DBExecutor общий интерфейс выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

var intervalColumns = []string{
	"id",
	"unit_id",
	"starts_at",
	"ends_at",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокирующими интервалами
// (техработы, праздники, частные мероприятия)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокирующих интервалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет блокирующий интервал и возвращает его с сгенерированным id
func (r *Repository) Create(ctx context.Context, interval *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_intervals").
		Columns("unit_id", "starts_at", "ends_at", "reason").
		Values(interval.UnitID, interval.StartsAt, interval.EndsAt, interval.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&interval.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	interval.CreatedAt = createdAt.Time

	return interval, nil
}

// Delete удаляет блокирующий интервал по id
func (r *Repository) Delete(ctx context.Context, unitID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_intervals").
		Where(squirrel.Eq{"id": id, "unit_id": unitID}).
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
		return ErrIntervalNotFound
	}

	return nil
}

// ListByUnit получает все блокирующие интервалы юнита, отсортированные по началу
func (r *Repository) ListByUnit(ctx context.Context, unitID int64) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("blocked_intervals").
		Where(squirrel.Eq{"unit_id": unitID}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUnit - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUnit - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// ListOverlapping получает интервалы юнита, пересекающиеся с [from, to).
// Полуинтервальная семантика: касание границ пересечением не считается.
func (r *Repository) ListOverlapping(ctx context.Context, unitID int64, from, to time.Time) ([]*domain.BlockedInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(intervalColumns...).
		From("blocked_intervals").
		Where(squirrel.Eq{"unit_id": unitID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// scanIntervals сканирует результаты запроса в слайс интервалов
func scanIntervals(rows *sql.Rows) ([]*domain.BlockedInterval, error) {
	intervals := make([]*domain.BlockedInterval, 0)

	for rows.Next() {
		var interval domain.BlockedInterval
		var createdAt sql.NullTime

		err := rows.Scan(
			&interval.ID,
			&interval.UnitID,
			&interval.StartsAt,
			&interval.EndsAt,
			&interval.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanIntervals - scan row: %v", ErrScanRow, err)
		}

		interval.CreatedAt = createdAt.Time
		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

package schedule

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

// Repository репозиторий для работы с недельным расписанием юнитов.
// Хранит ровно одно правило на день недели; расписание заменяется
// целиком, частичных обновлений нет.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek получает недельное расписание юнита.
// Возвращает ErrScheduleNotFound, если у юнита нет сохраненных правил -
// вызывающая сторона подставляет расписание по умолчанию.
func (r *Repository) GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"opening_time",
		"closing_time",
		"is_closed",
	).
		From("working_hour_rules").
		Where(squirrel.Eq{"unit_id": unitID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeekSchedule, 0, 7)

	for rows.Next() {
		var rule domain.WorkingHourRule
		var day int
		var opening, closing sql.NullString

		if err := rows.Scan(&day, &opening, &closing, &rule.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}

		rule.DayOfWeek = time.Weekday(day)
		if opening.Valid {
			if err := rule.OpeningTime.Scan(opening.String); err != nil {
				return nil, fmt.Errorf("%w: GetWeek - parse opening_time: %v", ErrScanRow, err)
			}
		}
		if closing.Valid {
			if err := rule.ClosingTime.Scan(closing.String); err != nil {
				return nil, fmt.Errorf("%w: GetWeek - parse closing_time: %v", ErrScanRow, err)
			}
		}

		week = append(week, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	if len(week) == 0 {
		return nil, ErrScheduleNotFound
	}

	return week, nil
}

// ReplaceWeek заменяет недельное расписание юнита целиком.
// Выполняется как delete + insert; вызывающая сторона оборачивает
// вызов в транзакцию, чтобы не оставить юнит без расписания при сбое.
func (r *Repository) ReplaceWeek(ctx context.Context, unitID int64, week domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hour_rules").
		Where(squirrel.Eq{"unit_id": unitID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("working_hour_rules").
		Columns("unit_id", "day_of_week", "opening_time", "closing_time", "is_closed")

	for _, rule := range week {
		var opening, closing interface{}
		if !rule.IsClosed {
			opening = rule.OpeningTime
			closing = rule.ClosingTime
		}
		insertBuilder = insertBuilder.Values(unitID, int(rule.DayOfWeek), opening, closing, rule.IsClosed)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

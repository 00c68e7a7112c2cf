package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultcare/internal/domain"
)

type OverrideRepo struct {
	db *pgxpool.Pool
}

func NewOverrideRepository(db *pgxpool.Pool) OverrideRepository {
	return &OverrideRepo{db: db}
}

const overrideColumns = `
	id, consultant_id, override_date, start_time, end_time, break_start, break_end, reason,
	created_by_user_id, created_by_role, created_by_name, created_at, updated_at
`

func (r *OverrideRepo) Create(ctx context.Context, override domain.ScheduleOverride) (uuid.UUID, error) {
	query := `
		INSERT INTO schedule_overrides (
			consultant_id, override_date, start_time, end_time, break_start, break_end, reason,
			created_by_user_id, created_by_role, created_by_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.QueryRow(
		ctx,
		query,
		override.ConsultantID,
		override.OverrideDate,
		nullString(override.StartTime),
		nullString(override.EndTime),
		nullString(override.BreakStart),
		nullString(override.BreakEnd),
		override.Reason,
		override.CreatedBy.UserID,
		override.CreatedBy.Role,
		override.CreatedBy.Name,
		override.CreatedAt,
		override.UpdatedAt,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("исключение на %s уже существует: %w",
				domain.FormatDate(override.OverrideDate), domain.ErrConflict)
		}
		return uuid.Nil, fmt.Errorf("ошибка создания исключения в расписании: %w", err)
	}

	return id, nil
}

func (r *OverrideRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleOverride, error) {
	query := `SELECT ` + overrideColumns + ` FROM schedule_overrides WHERE id = $1`

	override, err := scanOverride(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения исключения в расписании: %w", err)
	}

	return override, nil
}

func (r *OverrideRepo) Update(ctx context.Context, override domain.ScheduleOverride) error {
	query := `
		UPDATE schedule_overrides
		SET override_date = $1, start_time = $2, end_time = $3, break_start = $4, break_end = $5,
			reason = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		override.OverrideDate,
		nullString(override.StartTime),
		nullString(override.EndTime),
		nullString(override.BreakStart),
		nullString(override.BreakEnd),
		override.Reason,
		override.UpdatedAt,
		override.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("исключение на %s уже существует: %w",
				domain.FormatDate(override.OverrideDate), domain.ErrConflict)
		}
		return fmt.Errorf("ошибка обновления исключения в расписании: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}

	return nil
}

func (r *OverrideRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedule_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления исключения в расписании: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}

	return nil
}

func (r *OverrideRepo) FindByConsultantAndDate(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ScheduleOverride, error) {
	query := `SELECT ` + overrideColumns + ` FROM schedule_overrides WHERE consultant_id = $1 AND override_date = $2`

	override, err := scanOverride(r.db.QueryRow(ctx, query, consultantID, domain.NormalizeDate(date)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска исключения в расписании: %w", err)
	}

	return override, nil
}

func (r *OverrideRepo) ListByConsultant(ctx context.Context, filter domain.OverrideFilter) ([]domain.ScheduleOverride, error) {
	query := `SELECT ` + overrideColumns + ` FROM schedule_overrides WHERE consultant_id = $1`
	args := []interface{}{filter.ConsultantID}
	argPos := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND override_date >= $%d", argPos)
		args = append(args, domain.NormalizeDate(*filter.From))
		argPos++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND override_date <= $%d", argPos)
		args = append(args, domain.NormalizeDate(*filter.To))
	}

	query += " ORDER BY override_date"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка исключений: %w", err)
	}
	defer rows.Close()

	overrides := make([]domain.ScheduleOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования исключения: %w", err)
		}
		overrides = append(overrides, *override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки списка исключений: %w", err)
	}

	return overrides, nil
}

func (r *OverrideRepo) ExistsForDate(ctx context.Context, consultantID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM schedule_overrides WHERE consultant_id = $1 AND override_date = $2`
	args := []interface{}{consultantID, domain.NormalizeDate(date)}

	if excludeID != nil {
		query += ` AND id <> $3`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки исключения в расписании: %w", err)
	}

	return exists, nil
}

func scanOverride(row pgx.Row) (*domain.ScheduleOverride, error) {
	var override domain.ScheduleOverride
	var startTime, endTime, breakStart, breakEnd *string

	err := row.Scan(
		&override.ID,
		&override.ConsultantID,
		&override.OverrideDate,
		&startTime,
		&endTime,
		&breakStart,
		&breakEnd,
		&override.Reason,
		&override.CreatedBy.UserID,
		&override.CreatedBy.Role,
		&override.CreatedBy.Name,
		&override.CreatedAt,
		&override.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	override.OverrideDate = domain.NormalizeDate(override.OverrideDate)
	override.StartTime = fromNullString(startTime)
	override.EndTime = fromNullString(endTime)
	override.BreakStart = fromNullString(breakStart)
	override.BreakEnd = fromNullString(breakEnd)

	return &override, nil
}

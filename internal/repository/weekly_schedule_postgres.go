package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultcare/internal/domain"
)

type WeeklyScheduleRepo struct {
	db *pgxpool.Pool
}

func NewWeeklyScheduleRepository(db *pgxpool.Pool) WeeklyScheduleRepository {
	return &WeeklyScheduleRepo{db: db}
}

const weeklyScheduleColumns = `
	id, consultant_id, working_days, default_slot_duration, effective_from, effective_to, notes,
	created_by_user_id, created_by_role, created_by_name, created_at, updated_at
`

func (r *WeeklyScheduleRepo) Create(ctx context.Context, schedule domain.WeeklySchedule) (uuid.UUID, error) {
	days, err := json.Marshal(schedule.WorkingDays)
	if err != nil {
		return uuid.Nil, fmt.Errorf("ошибка сериализации рабочих дней: %w", err)
	}

	query := `
		INSERT INTO weekly_schedules (
			consultant_id, working_days, default_slot_duration, effective_from, effective_to, notes,
			created_by_user_id, created_by_role, created_by_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id uuid.UUID
	err = r.db.QueryRow(
		ctx,
		query,
		schedule.ConsultantID,
		days,
		schedule.DefaultSlotDuration,
		schedule.EffectiveFrom,
		schedule.EffectiveTo,
		schedule.Notes,
		schedule.CreatedBy.UserID,
		schedule.CreatedBy.Role,
		schedule.CreatedBy.Name,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, domain.ErrAlreadyExists
		}
		return uuid.Nil, fmt.Errorf("ошибка создания недельного расписания: %w", err)
	}

	return id, nil
}

func (r *WeeklyScheduleRepo) GetByConsultantID(ctx context.Context, consultantID uuid.UUID) (*domain.WeeklySchedule, error) {
	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules WHERE consultant_id = $1`

	schedule, err := scanWeeklySchedule(r.db.QueryRow(ctx, query, consultantID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения недельного расписания: %w", err)
	}

	return schedule, nil
}

func (r *WeeklyScheduleRepo) Update(ctx context.Context, schedule domain.WeeklySchedule) error {
	days, err := json.Marshal(schedule.WorkingDays)
	if err != nil {
		return fmt.Errorf("ошибка сериализации рабочих дней: %w", err)
	}

	query := `
		UPDATE weekly_schedules
		SET working_days = $1, default_slot_duration = $2, effective_from = $3, effective_to = $4,
			notes = $5, updated_at = $6
		WHERE consultant_id = $7
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		days,
		schedule.DefaultSlotDuration,
		schedule.EffectiveFrom,
		schedule.EffectiveTo,
		schedule.Notes,
		schedule.UpdatedAt,
		schedule.ConsultantID,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления недельного расписания: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}

	return nil
}

func (r *WeeklyScheduleRepo) Delete(ctx context.Context, consultantID uuid.UUID) error {
	query := `DELETE FROM weekly_schedules WHERE consultant_id = $1`

	tag, err := r.db.Exec(ctx, query, consultantID)
	if err != nil {
		return fmt.Errorf("ошибка удаления недельного расписания: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}

	return nil
}

func (r *WeeklyScheduleRepo) ExistsByConsultantID(ctx context.Context, consultantID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM weekly_schedules WHERE consultant_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, consultantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("ошибка проверки недельного расписания: %w", err)
	}

	return exists, nil
}

func (r *WeeklyScheduleRepo) List(ctx context.Context, filter domain.WeeklyScheduleFilter) ([]domain.WeeklySchedule, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM weekly_schedules`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества недельных расписаний: %w", err)
	}

	query := `SELECT ` + weeklyScheduleColumns + ` FROM weekly_schedules ORDER BY created_at, id LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка недельных расписаний: %w", err)
	}
	defer rows.Close()

	schedules := make([]domain.WeeklySchedule, 0)
	for rows.Next() {
		schedule, err := scanWeeklySchedule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования недельного расписания: %w", err)
		}
		schedules = append(schedules, *schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обработки списка недельных расписаний: %w", err)
	}

	return schedules, total, nil
}

func scanWeeklySchedule(row pgx.Row) (*domain.WeeklySchedule, error) {
	var (
		schedule    domain.WeeklySchedule
		days        []byte
		effectiveTo *time.Time
	)

	err := row.Scan(
		&schedule.ID,
		&schedule.ConsultantID,
		&days,
		&schedule.DefaultSlotDuration,
		&schedule.EffectiveFrom,
		&effectiveTo,
		&schedule.Notes,
		&schedule.CreatedBy.UserID,
		&schedule.CreatedBy.Role,
		&schedule.CreatedBy.Name,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Stored documents written before a weekday existed are filled on read.
	if err := json.Unmarshal(days, &schedule.WorkingDays); err != nil {
		return nil, fmt.Errorf("ошибка разбора рабочих дней: %w", err)
	}

	schedule.EffectiveFrom = domain.NormalizeDate(schedule.EffectiveFrom)
	if effectiveTo != nil {
		to := domain.NormalizeDate(*effectiveTo)
		schedule.EffectiveTo = &to
	}

	return &schedule, nil
}

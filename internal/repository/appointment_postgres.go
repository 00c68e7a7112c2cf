package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultcare/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

func (r *AppointmentRepo) ListByDate(ctx context.Context, consultantID uuid.UUID, date time.Time) ([]domain.Appointment, error) {
	query := `
		SELECT id, consultant_id, customer_id, appointment_date, start_time, end_time, status
		FROM appointments
		WHERE consultant_id = $1
		AND appointment_date = $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, consultantID, domain.NormalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей на прием: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID,
			&a.ConsultantID,
			&a.CustomerID,
			&a.AppointmentDate,
			&a.StartTime,
			&a.EndTime,
			&a.Status,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи на прием: %w", err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обработки записей на прием: %w", err)
	}

	return appointments, nil
}

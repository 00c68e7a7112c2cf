package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultcare/internal/domain"
)

type Repositories struct {
	User           UserRepository
	Consultant     ConsultantRepository
	Appointment    AppointmentRepository
	WeeklySchedule WeeklyScheduleRepository
	Override       OverrideRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		Consultant:     NewConsultantRepository(db),
		Appointment:    NewAppointmentRepository(db),
		WeeklySchedule: NewWeeklyScheduleRepository(db),
		Override:       NewOverrideRepository(db),
	}
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type ConsultantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultant, error)
}

type AppointmentRepository interface {
	// ListByDate returns the consultant's appointments on date in every
	// status, ordered by start time.
	ListByDate(ctx context.Context, consultantID uuid.UUID, date time.Time) ([]domain.Appointment, error)
}

type WeeklyScheduleRepository interface {
	Create(ctx context.Context, schedule domain.WeeklySchedule) (uuid.UUID, error)
	GetByConsultantID(ctx context.Context, consultantID uuid.UUID) (*domain.WeeklySchedule, error)
	Update(ctx context.Context, schedule domain.WeeklySchedule) error
	Delete(ctx context.Context, consultantID uuid.UUID) error
	ExistsByConsultantID(ctx context.Context, consultantID uuid.UUID) (bool, error)
	List(ctx context.Context, filter domain.WeeklyScheduleFilter) ([]domain.WeeklySchedule, int, error)
}

type OverrideRepository interface {
	Create(ctx context.Context, override domain.ScheduleOverride) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleOverride, error)
	Update(ctx context.Context, override domain.ScheduleOverride) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByConsultantAndDate(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ScheduleOverride, error)
	ListByConsultant(ctx context.Context, filter domain.OverrideFilter) ([]domain.ScheduleOverride, error)
	ExistsForDate(ctx context.Context, consultantID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// nullString maps the empty string to SQL NULL for optional HH:mm columns.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

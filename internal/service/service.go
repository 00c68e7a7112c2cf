package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consultcare/config"
	"consultcare/internal/domain"
	"consultcare/internal/repository"
	"consultcare/internal/storage"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
	// Archive is optional; without it deleted records are not archived.
	Archive storage.ArchiveStorage
	// Now defaults to time.Now.
	Now func() time.Time
}

type Services struct {
	Auth           AuthService
	WeeklySchedule WeeklyScheduleService
	Override       OverrideService
	Availability   AvailabilityService
}

func NewServices(deps Deps) *Services {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	guard := NewConflictGuard(deps.Repos.WeeklySchedule, deps.Repos.Override)
	archive := newArchiver(deps.Archive, deps.Logger)

	return &Services{
		Auth: NewAuthService(deps.Config.JWT, deps.Logger, now),
		WeeklySchedule: NewWeeklyScheduleService(
			deps.Repos.WeeklySchedule,
			deps.Repos.Consultant,
			deps.Repos.User,
			guard,
			archive,
			deps.Logger,
			now,
		),
		Override: NewOverrideService(
			deps.Repos.Override,
			deps.Repos.Consultant,
			deps.Repos.User,
			guard,
			archive,
			deps.Logger,
			now,
		),
		Availability: NewAvailabilityService(
			deps.Repos.WeeklySchedule,
			deps.Repos.Override,
			deps.Repos.Consultant,
			deps.Repos.Appointment,
			deps.Config.Availability.MaxRangeDays,
			deps.Logger,
		),
	}
}

type AuthService interface {
	ParseToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
	IssueAccessToken(userID uuid.UUID, role domain.UserRole) (*domain.Tokens, error)
}

type WeeklyScheduleService interface {
	Create(ctx context.Context, actorID uuid.UUID, dto domain.CreateWeeklyScheduleDTO) (*domain.WeeklySchedule, error)
	Update(ctx context.Context, consultantID uuid.UUID, dto domain.UpdateWeeklyScheduleDTO) (*domain.WeeklySchedule, error)
	Get(ctx context.Context, consultantID uuid.UUID) (*domain.WeeklySchedule, error)
	Delete(ctx context.Context, consultantID uuid.UUID) error
	List(ctx context.Context, filter domain.WeeklyScheduleFilter) ([]domain.WeeklySchedule, int, error)
}

type OverrideService interface {
	Create(ctx context.Context, actorID uuid.UUID, dto domain.CreateOverrideDTO) (*domain.ScheduleOverride, error)
	Update(ctx context.Context, id uuid.UUID, dto domain.UpdateOverrideDTO) (*domain.ScheduleOverride, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDate(ctx context.Context, consultantID uuid.UUID, date time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleOverride, error)
	FindByConsultantAndDate(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ScheduleOverride, error)
	ListByConsultant(ctx context.Context, consultantID uuid.UUID, from, to *time.Time) ([]domain.ScheduleOverride, error)
}

type AvailabilityService interface {
	Resolve(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ResolvedDaySchedule, error)
	GenerateAvailableSlots(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.DayAvailability, error)
	ResolveRange(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]domain.ResolvedDaySchedule, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consultcare/internal/domain"
	"consultcare/internal/repository"
)

type AvailabilityServiceImpl struct {
	weeklyRepo      repository.WeeklyScheduleRepository
	overrideRepo    repository.OverrideRepository
	consultantRepo  repository.ConsultantRepository
	appointmentRepo repository.AppointmentRepository
	maxRangeDays    int
	logger          *zap.Logger
}

func NewAvailabilityService(
	weeklyRepo repository.WeeklyScheduleRepository,
	overrideRepo repository.OverrideRepository,
	consultantRepo repository.ConsultantRepository,
	appointmentRepo repository.AppointmentRepository,
	maxRangeDays int,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		weeklyRepo:      weeklyRepo,
		overrideRepo:    overrideRepo,
		consultantRepo:  consultantRepo,
		appointmentRepo: appointmentRepo,
		maxRangeDays:    maxRangeDays,
		logger:          logger,
	}
}

func (s *AvailabilityServiceImpl) Resolve(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ResolvedDaySchedule, error) {
	if err := ensureConsultant(ctx, s.consultantRepo, consultantID); err != nil {
		return nil, err
	}

	date = domain.NormalizeDate(date)

	override, err := s.overrideRepo.FindByConsultantAndDate(ctx, consultantID, date)
	if err != nil {
		s.logger.Error("ошибка поиска исключения",
			zap.String("consultant_id", consultantID.String()),
			zap.String("date", domain.FormatDate(date)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка поиска исключения: %w", err)
	}

	weekly, err := s.weeklyRepo.GetByConsultantID(ctx, consultantID)
	if err != nil {
		s.logger.Error("ошибка получения недельного расписания",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка получения недельного расписания: %w", err)
	}

	resolved := resolveDay(consultantID, date, override, weekly)
	return &resolved, nil
}

func (s *AvailabilityServiceImpl) GenerateAvailableSlots(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.DayAvailability, error) {
	resolved, err := s.Resolve(ctx, consultantID, date)
	if err != nil {
		return nil, err
	}

	var booked []domain.TimeRange
	if resolved.IsAvailable {
		appointments, err := s.appointmentRepo.ListByDate(ctx, consultantID, resolved.Date)
		if err != nil {
			s.logger.Error("ошибка получения записей консультанта",
				zap.String("consultant_id", consultantID.String()),
				zap.String("date", domain.FormatDate(resolved.Date)),
				zap.Error(err),
			)
			return nil, fmt.Errorf("ошибка получения записей консультанта: %w", err)
		}
		booked = domain.BookedRanges(appointments)
	}

	slots, err := GenerateSlots(*resolved, resolved.SlotDuration, booked)
	if err != nil {
		s.logger.Error("ошибка генерации слотов",
			zap.String("consultant_id", consultantID.String()),
			zap.String("date", domain.FormatDate(resolved.Date)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка генерации слотов: %w", err)
	}

	return &domain.DayAvailability{
		Date:         domain.FormatDate(resolved.Date),
		ConsultantID: consultantID,
		Source:       resolved.Source,
		IsAvailable:  resolved.IsAvailable,
		SlotDuration: resolved.SlotDuration,
		Slots:        slots,
		TotalSlots:   len(slots),
	}, nil
}

// ResolveRange resolves every date in [from, to] with one read per store.
func (s *AvailabilityServiceImpl) ResolveRange(ctx context.Context, consultantID uuid.UUID, from, to time.Time) ([]domain.ResolvedDaySchedule, error) {
	from, to = domain.NormalizeDate(from), domain.NormalizeDate(to)

	if to.Before(from) {
		return nil, fmt.Errorf("date_to раньше date_from: %w", domain.ErrInvalidInput)
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > s.maxRangeDays {
		return nil, fmt.Errorf("диапазон %d дн. превышает максимум %d дн.: %w", days, s.maxRangeDays, domain.ErrInvalidInput)
	}

	if err := ensureConsultant(ctx, s.consultantRepo, consultantID); err != nil {
		return nil, err
	}

	weekly, err := s.weeklyRepo.GetByConsultantID(ctx, consultantID)
	if err != nil {
		s.logger.Error("ошибка получения недельного расписания",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка получения недельного расписания: %w", err)
	}

	overrides, err := s.overrideRepo.ListByConsultant(ctx, domain.OverrideFilter{
		ConsultantID: consultantID,
		From:         &from,
		To:           &to,
	})
	if err != nil {
		s.logger.Error("ошибка получения исключений",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка получения исключений: %w", err)
	}

	byDate := make(map[string]*domain.ScheduleOverride, len(overrides))
	for i := range overrides {
		byDate[domain.FormatDate(overrides[i].OverrideDate)] = &overrides[i]
	}

	result := make([]domain.ResolvedDaySchedule, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		result = append(result, resolveDay(consultantID, d, byDate[domain.FormatDate(d)], weekly))
	}

	return result, nil
}

// resolveDay applies the precedence rules: an override replaces the day
// outright, otherwise the weekly template applies within its effective range.
func resolveDay(consultantID uuid.UUID, date time.Time, override *domain.ScheduleOverride, weekly *domain.WeeklySchedule) domain.ResolvedDaySchedule {
	resolved := domain.ResolvedDaySchedule{
		Date:         date,
		ConsultantID: consultantID,
		Source:       domain.SourceNone,
		SlotDuration: domain.DefaultSlotDuration,
	}

	if weekly != nil {
		resolved.SlotDuration = weekly.DefaultSlotDuration
	}

	if override != nil {
		resolved.Source = domain.SourceOverride
		if override.IsBlackout() {
			return resolved
		}
		resolved.StartTime = override.StartTime
		resolved.EndTime = override.EndTime
		resolved.BreakStart = override.BreakStart
		resolved.BreakEnd = override.BreakEnd
		resolved.IsAvailable = true
		return resolved
	}

	if weekly == nil {
		return resolved
	}

	resolved.Source = domain.SourceWeekly
	if !weekly.IsEffectiveOn(date) {
		return resolved
	}

	day := weekly.DayFor(date)
	if !day.IsAvailable {
		return resolved
	}

	resolved.StartTime = day.StartTime
	resolved.EndTime = day.EndTime
	resolved.BreakStart = day.BreakStart
	resolved.BreakEnd = day.BreakEnd
	resolved.IsAvailable = true
	return resolved
}

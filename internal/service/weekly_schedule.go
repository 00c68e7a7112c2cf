package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"consultcare/internal/domain"
	"consultcare/internal/repository"
	"consultcare/internal/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type WeeklyScheduleServiceImpl struct {
	repo           repository.WeeklyScheduleRepository
	consultantRepo repository.ConsultantRepository
	userRepo       repository.UserRepository
	guard          *ConflictGuard
	archive        *archiver
	logger         *zap.Logger
	now            func() time.Time
}

func NewWeeklyScheduleService(
	repo repository.WeeklyScheduleRepository,
	consultantRepo repository.ConsultantRepository,
	userRepo repository.UserRepository,
	guard *ConflictGuard,
	archive *archiver,
	logger *zap.Logger,
	now func() time.Time,
) *WeeklyScheduleServiceImpl {
	return &WeeklyScheduleServiceImpl{
		repo:           repo,
		consultantRepo: consultantRepo,
		userRepo:       userRepo,
		guard:          guard,
		archive:        archive,
		logger:         logger,
		now:            now,
	}
}

func (s *WeeklyScheduleServiceImpl) Create(ctx context.Context, actorID uuid.UUID, dto domain.CreateWeeklyScheduleDTO) (*domain.WeeklySchedule, error) {
	log := s.logger.With(zap.String("consultant_id", dto.ConsultantID.String()))

	duration := dto.DefaultSlotDuration
	if duration == 0 {
		duration = domain.DefaultSlotDuration
	}
	if err := domain.ValidateSlotDuration(duration); err != nil {
		return nil, err
	}

	effectiveFrom := domain.NormalizeDate(s.now())
	if dto.EffectiveFrom != "" {
		parsed, err := domain.ParseDate(dto.EffectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("effective_from: %w", err)
		}
		effectiveFrom = parsed
	}

	effectiveTo, err := parseOptionalDate(dto.EffectiveTo)
	if err != nil {
		return nil, fmt.Errorf("effective_to: %w", err)
	}
	if err := domain.ValidateEffectiveRange(effectiveFrom, effectiveTo); err != nil {
		return nil, err
	}

	days, err := domain.NewWorkingDays().Apply(dto.WorkingDays)
	if err != nil {
		log.Warn("некорректные рабочие дни", zap.Error(err))
		return nil, err
	}

	if err := ensureConsultant(ctx, s.consultantRepo, dto.ConsultantID); err != nil {
		return nil, err
	}

	if err := s.guard.AssertNoWeeklyScheduleConflict(ctx, dto.ConsultantID); err != nil {
		return nil, err
	}

	actor, err := lookupActor(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	schedule := domain.WeeklySchedule{
		ConsultantID:        dto.ConsultantID,
		WorkingDays:         days,
		DefaultSlotDuration: duration,
		EffectiveFrom:       effectiveFrom,
		EffectiveTo:         effectiveTo,
		Notes:               dto.Notes,
		CreatedBy:           actor,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	id, err := s.repo.Create(ctx, schedule)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		log.Error("ошибка создания недельного расписания", zap.Error(err))
		return nil, fmt.Errorf("ошибка создания недельного расписания: %w", err)
	}

	schedule.ID = id
	log.Info("создано недельное расписание", zap.String("schedule_id", id.String()))

	return &schedule, nil
}

func (s *WeeklyScheduleServiceImpl) Update(ctx context.Context, consultantID uuid.UUID, dto domain.UpdateWeeklyScheduleDTO) (*domain.WeeklySchedule, error) {
	schedule, err := s.Get(ctx, consultantID)
	if err != nil {
		return nil, err
	}

	days, err := schedule.WorkingDays.Apply(dto.WorkingDays)
	if err != nil {
		return nil, err
	}
	schedule.WorkingDays = days

	if dto.DefaultSlotDuration != nil {
		if err := domain.ValidateSlotDuration(*dto.DefaultSlotDuration); err != nil {
			return nil, err
		}
		schedule.DefaultSlotDuration = *dto.DefaultSlotDuration
	}

	if dto.EffectiveFrom != nil {
		parsed, err := domain.ParseDate(*dto.EffectiveFrom)
		if err != nil {
			return nil, fmt.Errorf("effective_from: %w", err)
		}
		schedule.EffectiveFrom = parsed
	}

	if dto.EffectiveTo != nil {
		effectiveTo, err := parseOptionalDate(dto.EffectiveTo)
		if err != nil {
			return nil, fmt.Errorf("effective_to: %w", err)
		}
		schedule.EffectiveTo = effectiveTo
	}

	if err := domain.ValidateEffectiveRange(schedule.EffectiveFrom, schedule.EffectiveTo); err != nil {
		return nil, err
	}

	if dto.Notes != nil {
		schedule.Notes = *dto.Notes
	}

	schedule.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, *schedule); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка обновления недельного расписания",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка обновления недельного расписания: %w", err)
	}

	return schedule, nil
}

func (s *WeeklyScheduleServiceImpl) Get(ctx context.Context, consultantID uuid.UUID) (*domain.WeeklySchedule, error) {
	schedule, err := s.repo.GetByConsultantID(ctx, consultantID)
	if err != nil {
		s.logger.Error("ошибка получения недельного расписания",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка получения недельного расписания: %w", err)
	}

	if schedule == nil {
		return nil, domain.ErrScheduleNotFound
	}

	return schedule, nil
}

func (s *WeeklyScheduleServiceImpl) Delete(ctx context.Context, consultantID uuid.UUID) error {
	schedule, err := s.Get(ctx, consultantID)
	if err != nil {
		return err
	}

	if err := s.archive.save(ctx, storage.WeeklyScheduleKey(consultantID, schedule.ID), schedule); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, consultantID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления недельного расписания",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("ошибка удаления недельного расписания: %w", err)
	}

	s.logger.Info("удалено недельное расписание", zap.String("consultant_id", consultantID.String()))
	return nil
}

func (s *WeeklyScheduleServiceImpl) List(ctx context.Context, filter domain.WeeklyScheduleFilter) ([]domain.WeeklySchedule, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	schedules, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка недельных расписаний", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка недельных расписаний: %w", err)
	}

	return schedules, total, nil
}

// parseOptionalDate treats nil and "" as an absent date.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

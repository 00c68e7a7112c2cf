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

type OverrideServiceImpl struct {
	repo           repository.OverrideRepository
	consultantRepo repository.ConsultantRepository
	userRepo       repository.UserRepository
	guard          *ConflictGuard
	archive        *archiver
	logger         *zap.Logger
	now            func() time.Time
}

func NewOverrideService(
	repo repository.OverrideRepository,
	consultantRepo repository.ConsultantRepository,
	userRepo repository.UserRepository,
	guard *ConflictGuard,
	archive *archiver,
	logger *zap.Logger,
	now func() time.Time,
) *OverrideServiceImpl {
	return &OverrideServiceImpl{
		repo:           repo,
		consultantRepo: consultantRepo,
		userRepo:       userRepo,
		guard:          guard,
		archive:        archive,
		logger:         logger,
		now:            now,
	}
}

func (s *OverrideServiceImpl) Create(ctx context.Context, actorID uuid.UUID, dto domain.CreateOverrideDTO) (*domain.ScheduleOverride, error) {
	date, err := domain.ParseDate(dto.OverrideDate)
	if err != nil {
		return nil, fmt.Errorf("override_date: %w", err)
	}

	override := domain.ScheduleOverride{
		ConsultantID: dto.ConsultantID,
		OverrideDate: date,
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		BreakStart:   dto.BreakStart,
		BreakEnd:     dto.BreakEnd,
		Reason:       dto.Reason,
	}

	if err := override.Validate(); err != nil {
		return nil, err
	}

	if err := ensureConsultant(ctx, s.consultantRepo, dto.ConsultantID); err != nil {
		return nil, err
	}

	if err := s.guard.AssertNoOverrideConflict(ctx, dto.ConsultantID, date, nil); err != nil {
		return nil, err
	}

	actor, err := lookupActor(ctx, s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	override.CreatedBy = actor
	override.CreatedAt = now
	override.UpdatedAt = now

	id, err := s.repo.Create(ctx, override)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		s.logger.Error("ошибка создания исключения",
			zap.String("consultant_id", dto.ConsultantID.String()),
			zap.String("date", dto.OverrideDate),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка создания исключения: %w", err)
	}

	override.ID = id
	s.logger.Info("создано исключение в расписании",
		zap.String("override_id", id.String()),
		zap.String("consultant_id", dto.ConsultantID.String()),
		zap.String("date", dto.OverrideDate),
	)

	return &override, nil
}

func (s *OverrideServiceImpl) Update(ctx context.Context, id uuid.UUID, dto domain.UpdateOverrideDTO) (*domain.ScheduleOverride, error) {
	override, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dateChanged := false
	if dto.OverrideDate != nil {
		date, err := domain.ParseDate(*dto.OverrideDate)
		if err != nil {
			return nil, fmt.Errorf("override_date: %w", err)
		}
		dateChanged = !date.Equal(override.OverrideDate)
		override.OverrideDate = date
	}

	if dto.StartTime != nil {
		override.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		override.EndTime = *dto.EndTime
	}
	if dto.BreakStart != nil {
		override.BreakStart = *dto.BreakStart
	}
	if dto.BreakEnd != nil {
		override.BreakEnd = *dto.BreakEnd
	}
	if dto.Reason != nil {
		override.Reason = *dto.Reason
	}

	if err := override.Validate(); err != nil {
		return nil, err
	}

	if dateChanged {
		if err := s.guard.AssertNoOverrideConflict(ctx, override.ConsultantID, override.OverrideDate, &override.ID); err != nil {
			return nil, err
		}
	}

	override.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, *override); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("ошибка обновления исключения", zap.String("override_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("ошибка обновления исключения: %w", err)
	}

	return override, nil
}

func (s *OverrideServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	override, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.remove(ctx, override)
}

func (s *OverrideServiceImpl) DeleteByDate(ctx context.Context, consultantID uuid.UUID, date time.Time) error {
	override, err := s.FindByConsultantAndDate(ctx, consultantID, date)
	if err != nil {
		return err
	}
	return s.remove(ctx, override)
}

func (s *OverrideServiceImpl) remove(ctx context.Context, override *domain.ScheduleOverride) error {
	key := storage.OverrideKey(override.ConsultantID, override.OverrideDate, override.ID)
	if err := s.archive.save(ctx, key, override); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, override.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		s.logger.Error("ошибка удаления исключения", zap.String("override_id", override.ID.String()), zap.Error(err))
		return fmt.Errorf("ошибка удаления исключения: %w", err)
	}

	s.logger.Info("удалено исключение в расписании",
		zap.String("override_id", override.ID.String()),
		zap.String("consultant_id", override.ConsultantID.String()),
		zap.String("date", domain.FormatDate(override.OverrideDate)),
	)
	return nil
}

func (s *OverrideServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScheduleOverride, error) {
	override, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения исключения", zap.String("override_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения исключения: %w", err)
	}

	if override == nil {
		return nil, domain.ErrOverrideNotFound
	}

	return override, nil
}

func (s *OverrideServiceImpl) FindByConsultantAndDate(ctx context.Context, consultantID uuid.UUID, date time.Time) (*domain.ScheduleOverride, error) {
	override, err := s.repo.FindByConsultantAndDate(ctx, consultantID, date)
	if err != nil {
		s.logger.Error("ошибка поиска исключения",
			zap.String("consultant_id", consultantID.String()),
			zap.String("date", domain.FormatDate(date)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка поиска исключения: %w", err)
	}

	if override == nil {
		return nil, domain.ErrOverrideNotFound
	}

	return override, nil
}

// ListByConsultant returns overrides ordered by date, optionally bounded by
// an inclusive date range.
func (s *OverrideServiceImpl) ListByConsultant(ctx context.Context, consultantID uuid.UUID, from, to *time.Time) ([]domain.ScheduleOverride, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("date_to раньше date_from: %w", domain.ErrInvalidInput)
	}

	overrides, err := s.repo.ListByConsultant(ctx, domain.OverrideFilter{
		ConsultantID: consultantID,
		From:         from,
		To:           to,
	})
	if err != nil {
		s.logger.Error("ошибка получения исключений",
			zap.String("consultant_id", consultantID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("ошибка получения исключений: %w", err)
	}

	return overrides, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"consultcare/internal/domain"
	"consultcare/internal/repository"
)

// ConflictGuard fails fast on duplicate schedule records. The check and the
// following write are not atomic; the unique constraints in storage remain
// the final arbiter and are mapped to the same errors by the repositories.
type ConflictGuard struct {
	weeklyRepo   repository.WeeklyScheduleRepository
	overrideRepo repository.OverrideRepository
}

func NewConflictGuard(weeklyRepo repository.WeeklyScheduleRepository, overrideRepo repository.OverrideRepository) *ConflictGuard {
	return &ConflictGuard{
		weeklyRepo:   weeklyRepo,
		overrideRepo: overrideRepo,
	}
}

func (g *ConflictGuard) AssertNoWeeklyScheduleConflict(ctx context.Context, consultantID uuid.UUID) error {
	exists, err := g.weeklyRepo.ExistsByConsultantID(ctx, consultantID)
	if err != nil {
		return fmt.Errorf("ошибка проверки конфликта расписания: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}
	return nil
}

// AssertNoOverrideConflict checks the (consultant, date) key, ignoring the
// record with excludeID so an override can be updated in place.
func (g *ConflictGuard) AssertNoOverrideConflict(ctx context.Context, consultantID uuid.UUID, date time.Time, excludeID *uuid.UUID) error {
	exists, err := g.overrideRepo.ExistsForDate(ctx, consultantID, date, excludeID)
	if err != nil {
		return fmt.Errorf("ошибка проверки конфликта исключения: %w", err)
	}
	if exists {
		return fmt.Errorf("исключение на %s уже существует: %w", domain.FormatDate(date), domain.ErrConflict)
	}
	return nil
}

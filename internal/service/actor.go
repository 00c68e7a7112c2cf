package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"consultcare/internal/domain"
	"consultcare/internal/repository"
)

// lookupActor snapshots the author of a schedule record at write time.
func lookupActor(ctx context.Context, users repository.UserRepository, userID uuid.UUID) (domain.Actor, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("ошибка получения автора: %w", err)
	}
	if user == nil || !user.IsActive {
		return domain.Actor{}, fmt.Errorf("автор %s не найден: %w", userID, domain.ErrUnauthorized)
	}
	return domain.NewActor(*user), nil
}

// ensureConsultant treats a deactivated consultant the same as a missing one.
func ensureConsultant(ctx context.Context, consultants repository.ConsultantRepository, consultantID uuid.UUID) error {
	consultant, err := consultants.GetByID(ctx, consultantID)
	if err != nil {
		return fmt.Errorf("ошибка проверки консультанта: %w", err)
	}
	if consultant == nil || !consultant.IsActive {
		return domain.ErrConsultantNotFound
	}
	return nil
}

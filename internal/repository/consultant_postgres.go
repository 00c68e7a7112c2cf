package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"consultcare/internal/domain"
)

type ConsultantRepo struct {
	db *pgxpool.Pool
}

func NewConsultantRepository(db *pgxpool.Pool) *ConsultantRepo {
	return &ConsultantRepo{
		db: db,
	}
}

func (r *ConsultantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Consultant, error) {
	query := `
		SELECT c.id, c.user_id, c.specialization, c.is_active, u.full_name, c.created_at, c.updated_at
		FROM consultants c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	var consultant domain.Consultant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&consultant.ID,
		&consultant.UserID,
		&consultant.Specialization,
		&consultant.IsActive,
		&consultant.FullName,
		&consultant.CreatedAt,
		&consultant.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения консультанта: %w", err)
	}

	return &consultant, nil
}

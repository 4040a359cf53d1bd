package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
)

type LawyerRepository interface {
	// FindByID возвращает юриста вместе с профилем (Profile nil, если профиля нет).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Lawyer, error)
	List(ctx context.Context) ([]*entity.Lawyer, error)
	Create(ctx context.Context, lawyer *entity.Lawyer) error
}


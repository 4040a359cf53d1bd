package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error)
	// ListUpcoming возвращает слоты с датой >= from, упорядоченные по дате и времени начала.
	ListUpcoming(ctx context.Context, lawyerID uuid.UUID, from time.Time) ([]*entity.AvailabilitySlot, error)
	// Delete удаляет только незабронированный слот, false - слот уже забронирован или удалён.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	SetSessionID(ctx context.Context, id uuid.UUID, sessionID string) error
	// UpdateStatus меняет статус только если текущий равен from.
	// Возвращает false, если строка уже была изменена другим запросом.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to valueobject.BookingStatus) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingView, error)
	ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Booking, error)
}

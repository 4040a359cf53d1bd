package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

type Booking struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	LawyerID        uuid.UUID
	DurationMinutes int
	BaseAmount      int64
	PlatformFee     int64
	TotalAmount     int64
	Currency        string
	Status          valueobject.BookingStatus
	StripeSessionID *string
	StartTime       *time.Time
	CreatedAt       time.Time
}

// BookingView - бронирование с проекцией юриста для дашборда клиента.
type BookingView struct {
	Booking
	LawyerCity string
	LawyerName string
}

// NewPendingBooking создаёт бронирование в статусе pending с уже посчитанной ценой.
func NewPendingBooking(userID, lawyerID uuid.UUID, durationMinutes int, price valueobject.Price) (*Booking, error) {
	if !valueobject.IsValidDuration(durationMinutes) {
		return nil, valueobject.ErrInvalidDuration
	}
	if price.TotalAmount != price.BaseAmount+price.PlatformFee {
		return nil, apperror.New(apperror.ErrCodeValidation, "итоговая сумма не совпадает с разбивкой")
	}

	return &Booking{
		ID:              uuid.New(),
		UserID:          userID,
		LawyerID:        lawyerID,
		DurationMinutes: durationMinutes,
		BaseAmount:      price.BaseAmount,
		PlatformFee:     price.PlatformFee,
		TotalAmount:     price.TotalAmount,
		Currency:        price.Currency,
		Status:          valueobject.BookingStatusPending,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Price возвращает разбивку стоимости бронирования.
func (b *Booking) Price() valueobject.Price {
	return valueobject.Price{
		BaseAmount:  b.BaseAmount,
		PlatformFee: b.PlatformFee,
		TotalAmount: b.TotalAmount,
		Currency:    b.Currency,
	}
}

// TransitionTo переводит бронирование в новый статус, если это шаг вперёд.
func (b *Booking) TransitionTo(status valueobject.BookingStatus) error {
	if !b.Status.CanTransitionTo(status) {
		return apperror.New(apperror.ErrCodeConflict, "невозможно перевести бронирование из "+string(b.Status)+" в "+string(status))
	}
	b.Status = status
	return nil
}

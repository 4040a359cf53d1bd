package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

type AvailabilitySlot struct {
	ID        uuid.UUID
	LawyerID  uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	IsBooked  bool
	CreatedAt time.Time
}

// NewAvailabilitySlot проверяет окно и создаёт свободный слот.
// today - начало текущего дня, слоты в прошлом не создаются.
func NewAvailabilitySlot(lawyerID uuid.UUID, date, start, end string, today time.Time) (*AvailabilitySlot, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "дата должна быть в формате YYYY-MM-DD")
	}
	startAt, err := time.Parse(TimeOfDayLayout, start)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "время начала должно быть в формате HH:MM")
	}
	endAt, err := time.Parse(TimeOfDayLayout, end)
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, "время окончания должно быть в формате HH:MM")
	}
	if !startAt.Before(endAt) {
		return nil, apperror.New(apperror.ErrCodeValidation, "время начала должно быть раньше окончания")
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(todayDate) {
		return nil, apperror.New(apperror.ErrCodeValidation, "нельзя добавить слот в прошлом")
	}

	return &AvailabilitySlot{
		ID:        uuid.New(),
		LawyerID:  lawyerID,
		Date:      day,
		StartTime: startAt.Format(TimeOfDayLayout),
		EndTime:   endAt.Format(TimeOfDayLayout),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// CanBeDeleted - удалять можно только незабронированный слот.
func (s *AvailabilitySlot) CanBeDeleted() bool {
	return !s.IsBooked
}

package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

type CreateBookingInput struct {
	LawyerID        uuid.UUID
	DurationMinutes int
}

// CreateBookingUseCase записывает pending-бронирование по свежей ставке юриста.
type CreateBookingUseCase struct {
	bookingRepo repository.BookingRepository
	lawyerRepo  repository.LawyerRepository
}

func NewCreateBookingUseCase(bookingRepo repository.BookingRepository, lawyerRepo repository.LawyerRepository) *CreateBookingUseCase {
	return &CreateBookingUseCase{bookingRepo: bookingRepo, lawyerRepo: lawyerRepo}
}

// Execute возвращает созданное бронирование и юриста, по которому посчитана цена.
func (uc *CreateBookingUseCase) Execute(ctx context.Context, input CreateBookingInput) (*entity.Booking, *entity.Lawyer, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, nil, apperror.ErrUnauthenticated
	}
	if input.LawyerID == uuid.Nil || !valueobject.IsValidDuration(input.DurationMinutes) {
		return nil, nil, apperror.ErrInvalidCheckout
	}

	lawyer, err := uc.lawyerRepo.FindByID(ctx, input.LawyerID)
	if err != nil {
		return nil, nil, lookupError(err, apperror.ErrLawyerNotFound)
	}
	if lawyer.IsOwnedBy(id.UserID) {
		return nil, nil, apperror.ErrSelfBooking
	}

	price, err := valueobject.CalculatePrice(lawyer.HourlyRate, input.DurationMinutes)
	if err != nil {
		return nil, nil, err
	}

	booking, err := entity.NewPendingBooking(id.UserID, lawyer.ID, input.DurationMinutes, price)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "Failed to create booking: "+causeMessage(err))
	}

	return booking, lawyer, nil
}

// lookupError сводит ошибку хранилища к notFound или PersistenceError.
func lookupError(err error, notFound *apperror.AppError) error {
	if apperror.IsNotFound(err) {
		return notFound
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "ошибка чтения из базы данных")
}

func causeMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	return err.Error()
}

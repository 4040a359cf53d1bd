package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// ConfirmBookingUseCase - юрист подтверждает оплаченную консультацию.
type ConfirmBookingUseCase struct {
	bookingRepo repository.BookingRepository
	lawyerRepo  repository.LawyerRepository
}

func NewConfirmBookingUseCase(bookingRepo repository.BookingRepository, lawyerRepo repository.LawyerRepository) *ConfirmBookingUseCase {
	return &ConfirmBookingUseCase{bookingRepo: bookingRepo, lawyerRepo: lawyerRepo}
}

func (uc *ConfirmBookingUseCase) Execute(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	booking, lawyer, err := loadWithLawyer(ctx, uc.bookingRepo, uc.lawyerRepo, bookingID)
	if err != nil {
		return nil, err
	}
	if !lawyer.IsOwnedBy(id.UserID) {
		return nil, apperror.ErrForbidden
	}

	if err := changeStatus(ctx, uc.bookingRepo, booking, valueobject.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBookingUseCase - отмену может сделать клиент или юрист бронирования.
// У неоплаченного бронирования сначала закрывается checkout-сессия.
type CancelBookingUseCase struct {
	bookingRepo repository.BookingRepository
	lawyerRepo  repository.LawyerRepository
	gateway     repository.PaymentGateway
}

func NewCancelBookingUseCase(
	bookingRepo repository.BookingRepository,
	lawyerRepo repository.LawyerRepository,
	gateway repository.PaymentGateway,
) *CancelBookingUseCase {
	return &CancelBookingUseCase{bookingRepo: bookingRepo, lawyerRepo: lawyerRepo, gateway: gateway}
}

func (uc *CancelBookingUseCase) Execute(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	booking, lawyer, err := loadWithLawyer(ctx, uc.bookingRepo, uc.lawyerRepo, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != id.UserID && !lawyer.IsOwnedBy(id.UserID) {
		return nil, apperror.ErrForbidden
	}
	if !booking.Status.CanTransitionTo(valueobject.BookingStatusCancelled) {
		return nil, booking.TransitionTo(valueobject.BookingStatusCancelled)
	}

	if booking.Status == valueobject.BookingStatusPending && booking.StripeSessionID != nil {
		if err := uc.expireSession(ctx, *booking.StripeSessionID); err != nil {
			return nil, err
		}
	}

	if err := changeStatus(ctx, uc.bookingRepo, booking, valueobject.BookingStatusCancelled); err != nil {
		return nil, err
	}
	return booking, nil
}

// expireSession закрывает сессию, пока её не оплатили. Оплаченную сессию отменять нельзя.
func (uc *CancelBookingUseCase) expireSession(ctx context.Context, sessionID string) error {
	session, err := uc.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return err
	}

	switch {
	case session.PaymentStatus == repository.PaymentStatusPaid || session.Status == repository.SessionStatusComplete:
		return apperror.New(apperror.ErrCodeConflict, "бронирование уже оплачено, обновите страницу")
	case session.Status == repository.SessionStatusExpired:
		return nil
	}

	_, err = uc.gateway.ExpireCheckoutSession(ctx, sessionID)
	return err
}

func loadWithLawyer(
	ctx context.Context,
	bookingRepo repository.BookingRepository,
	lawyerRepo repository.LawyerRepository,
	bookingID uuid.UUID,
) (*entity.Booking, *entity.Lawyer, error) {
	booking, err := bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, nil, lookupError(err, apperror.ErrBookingNotFound)
	}
	lawyer, err := lawyerRepo.FindByID(ctx, booking.LawyerID)
	if err != nil {
		return nil, nil, lookupError(err, apperror.ErrLawyerNotFound)
	}
	return booking, lawyer, nil
}

// changeStatus проверяет переход и применяет его условным UPDATE.
func changeStatus(ctx context.Context, repo repository.BookingRepository, booking *entity.Booking, to valueobject.BookingStatus) error {
	from := booking.Status
	if err := booking.TransitionTo(to); err != nil {
		return err
	}

	updated, err := repo.UpdateStatus(ctx, booking.ID, from, to)
	if err != nil {
		booking.Status = from
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить статус бронирования")
	}
	if !updated {
		booking.Status = from
		return apperror.New(apperror.ErrCodeConflict, "статус бронирования изменился, обновите страницу")
	}
	return nil
}

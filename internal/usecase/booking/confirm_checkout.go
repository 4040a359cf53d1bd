package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// ConfirmCheckoutUseCase сверяет checkout-сессию с провайдером и отмечает бронирование оплаченным.
type ConfirmCheckoutUseCase struct {
	bookingRepo repository.BookingRepository
	gateway     repository.PaymentGateway
}

func NewConfirmCheckoutUseCase(bookingRepo repository.BookingRepository, gateway repository.PaymentGateway) *ConfirmCheckoutUseCase {
	return &ConfirmCheckoutUseCase{bookingRepo: bookingRepo, gateway: gateway}
}

func (uc *ConfirmCheckoutUseCase) Execute(ctx context.Context, sessionID string) (*entity.Booking, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "session_id обязателен")
	}

	session, err := uc.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	bookingID, err := uuid.Parse(session.Metadata["booking_id"])
	if err != nil {
		return nil, apperror.New(apperror.ErrCodeBadRequest, "сессия не связана с бронированием")
	}

	booking, err := uc.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, lookupError(err, apperror.ErrBookingNotFound)
	}
	if booking.UserID != id.UserID {
		return nil, apperror.ErrForbidden
	}
	if !sessionMatches(session, booking) {
		return nil, apperror.New(apperror.ErrCodeConflict, "сессия не совпадает с бронированием")
	}

	if session.PaymentStatus != repository.PaymentStatusPaid {
		return booking, nil
	}

	switch booking.Status {
	case valueobject.BookingStatusPaid, valueobject.BookingStatusConfirmed:
		return booking, nil
	case valueobject.BookingStatusCancelled:
		return nil, apperror.New(apperror.ErrCodeConflict, "бронирование отменено")
	}

	if err := changeStatus(ctx, uc.bookingRepo, booking, valueobject.BookingStatusPaid); err != nil {
		return nil, err
	}
	return booking, nil
}

// sessionMatches сверяет сессию с бронированием, для которого она создавалась.
func sessionMatches(session *repository.CheckoutSession, booking *entity.Booking) bool {
	if booking.StripeSessionID != nil && *booking.StripeSessionID != session.ID {
		return false
	}
	if session.Metadata["user_id"] != booking.UserID.String() {
		return false
	}
	if session.PaymentStatus == repository.PaymentStatusPaid && session.AmountTotal != booking.Price().MinorUnits() {
		return false
	}
	return true
}

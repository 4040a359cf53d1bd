package booking

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

type CreateCheckoutInput struct {
	LawyerID        string
	DurationMinutes int
	// Origin - уже проверенный адрес фронтенда для success/cancel URL.
	Origin string
}

type CreateCheckoutOutput struct {
	URL       string
	SessionID string
	BookingID uuid.UUID
}

// CreateCheckoutUseCase создаёт бронирование и hosted checkout-сессию для него.
type CreateCheckoutUseCase struct {
	createBooking *CreateBookingUseCase
	bookingRepo   repository.BookingRepository
	gateway       repository.PaymentGateway
	log           *logrus.Entry
}

func NewCreateCheckoutUseCase(
	createBooking *CreateBookingUseCase,
	bookingRepo repository.BookingRepository,
	gateway repository.PaymentGateway,
	log *logrus.Entry,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		createBooking: createBooking,
		bookingRepo:   bookingRepo,
		gateway:       gateway,
		log:           log,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, input CreateCheckoutInput) (*CreateCheckoutOutput, error) {
	id, ok := identity.FromContext(ctx)
	// Без email провайдер не сможет привязать клиента к оплате.
	if !ok || id.Email == "" {
		return nil, apperror.ErrUnauthenticated
	}

	lawyerID, err := uuid.Parse(strings.TrimSpace(input.LawyerID))
	if err != nil {
		return nil, apperror.ErrInvalidCheckout
	}

	booking, lawyer, err := uc.createBooking.Execute(ctx, CreateBookingInput{
		LawyerID:        lawyerID,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}

	// С этого момента неудача оставляет pending-бронирование без сессии.
	orphanLog := uc.log.WithFields(logrus.Fields{
		"booking_id": booking.ID.String(),
		"lawyer_id":  lawyer.ID.String(),
		"user_id":    id.UserID.String(),
	})

	req, err := uc.sessionRequest(ctx, id, booking, lawyer, input.Origin)
	if err != nil {
		orphanLog.WithError(err).Warn("orphan booking: customer lookup failed")
		return nil, err
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		orphanLog.WithError(err).Warn("orphan booking: checkout session was not created")
		return nil, err
	}

	if err := uc.bookingRepo.SetSessionID(ctx, booking.ID, session.ID); err != nil {
		orphanLog.WithError(err).WithField("session_id", session.ID).Warn("orphan booking: session id was not stored")
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "Failed to update booking: "+causeMessage(err))
	}
	booking.StripeSessionID = &session.ID

	return &CreateCheckoutOutput{
		URL:       session.URL,
		SessionID: session.ID,
		BookingID: booking.ID,
	}, nil
}

func (uc *CreateCheckoutUseCase) sessionRequest(
	ctx context.Context,
	id identity.Identity,
	booking *entity.Booking,
	lawyer *entity.Lawyer,
	origin string,
) (repository.CheckoutSessionRequest, error) {
	req := repository.CheckoutSessionRequest{
		ProductName: fmt.Sprintf("%d-min Consultation with %s", booking.DurationMinutes, lawyer.DisplayName()),
		Description: fmt.Sprintf("Legal consultation session (₹%d + ₹%d platform fee)", booking.BaseAmount, booking.PlatformFee),
		UnitAmount:  booking.Price().MinorUnits(),
		Currency:    booking.Currency,
		SuccessURL:  SuccessURL(origin),
		CancelURL:   CancelURL(origin, lawyer.ID),
		Metadata: map[string]string{
			"booking_id": booking.ID.String(),
			"lawyer_id":  lawyer.ID.String(),
			"user_id":    id.UserID.String(),
		},
	}

	customerID, err := uc.gateway.FindCustomerByEmail(ctx, id.Email)
	if err != nil {
		return req, err
	}
	if customerID != "" {
		req.CustomerID = customerID
	} else {
		req.CustomerEmail = id.Email
	}
	return req, nil
}

// SuccessURL - страница возврата после оплаты, провайдер подставляет id сессии сам.
func SuccessURL(origin string) string {
	return strings.TrimRight(origin, "/") + "/booking-success?session_id={CHECKOUT_SESSION_ID}"
}

func CancelURL(origin string, lawyerID uuid.UUID) string {
	return strings.TrimRight(origin, "/") + "/lawyers/" + url.PathEscape(lawyerID.String())
}

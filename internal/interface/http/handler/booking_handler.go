package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
)

type checkoutConfirmer interface {
	Execute(ctx context.Context, sessionID string) (*entity.Booking, error)
}

type bookingStatusChanger interface {
	Execute(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error)
}

type BookingHandler struct {
	confirmCheckoutUC checkoutConfirmer
	confirmBookingUC  bookingStatusChanger
	cancelBookingUC   bookingStatusChanger
}

func NewBookingHandler(confirmCheckoutUC checkoutConfirmer, confirmBookingUC, cancelBookingUC bookingStatusChanger) *BookingHandler {
	return &BookingHandler{
		confirmCheckoutUC: confirmCheckoutUC,
		confirmBookingUC:  confirmBookingUC,
		cancelBookingUC:   cancelBookingUC,
	}
}

// ConfirmCheckout обрабатывает GET /api/bookings/checkout/confirm?session_id=.
func (h *BookingHandler) ConfirmCheckout(c *gin.Context) {
	b, err := h.confirmCheckoutUC.Execute(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToBookingResponse(b))
}

// Confirm обрабатывает POST /api/bookings/:id/confirm.
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.confirmBookingUC)
}

// Cancel обрабатывает POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancelBookingUC)
}

func (h *BookingHandler) changeStatus(c *gin.Context, uc bookingStatusChanger) {
	bookingID, err := parseUUIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	b, err := uc.Execute(c.Request.Context(), bookingID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToBookingResponse(b))
}

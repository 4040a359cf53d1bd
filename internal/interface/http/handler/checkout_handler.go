package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/usecase/booking"
)

type checkoutCreator interface {
	Execute(ctx context.Context, input booking.CreateCheckoutInput) (*booking.CreateCheckoutOutput, error)
}

// CheckoutHandler обслуживает POST /api/create-checkout.
// Ответ плоский: {"url"} при успехе и {"error"} со статусом 500 при любой ошибке.
type CheckoutHandler struct {
	createCheckoutUC checkoutCreator
	origins          OriginPolicy
	publicAppURL     string
	log              *logrus.Entry
}

func NewCheckoutHandler(createCheckoutUC checkoutCreator, origins OriginPolicy, publicAppURL string, log *logrus.Entry) *CheckoutHandler {
	return &CheckoutHandler{
		createCheckoutUC: createCheckoutUC,
		origins:          origins,
		publicAppURL:     strings.TrimRight(publicAppURL, "/"),
		log:              log,
	}
}

func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, req, apperror.ErrInvalidCheckout)
		return
	}

	out, err := h.createCheckoutUC.Execute(c.Request.Context(), booking.CreateCheckoutInput{
		LawyerID:        req.LawyerID,
		DurationMinutes: req.DurationMinutes,
		Origin:          h.origin(c),
	})
	if err != nil {
		h.fail(c, req, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateCheckoutResponse{URL: out.URL})
}

// origin - Origin запроса, если он в списке CORS, иначе публичный адрес приложения.
func (h *CheckoutHandler) origin(c *gin.Context) string {
	origin := strings.TrimRight(c.GetHeader("Origin"), "/")
	if origin != "" && h.origins.IsAllowedOrigin(origin) {
		return origin
	}
	return h.publicAppURL
}

func (h *CheckoutHandler) fail(c *gin.Context, req dto.CreateCheckoutRequest, err error) {
	h.log.WithFields(logrus.Fields{
		"kind":      apperror.KindOf(err),
		"lawyer_id": req.LawyerID,
		"user_id":   userIDForLog(c),
	}).WithError(err).Error("create checkout failed")

	c.JSON(http.StatusInternalServerError, dto.CheckoutErrorResponse{Error: apperror.MessageOf(err)})
}

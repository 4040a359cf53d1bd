package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

// StripeGateway - hosted Checkout через Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway создаёт клиент Stripe. backends nil - боевые адреса API.
func NewStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	params := &stripe.CustomerListParams{Email: stripe.String(email)}
	params.Limit = stripe.Int64(1)
	params.Single = true
	params.Context = ctx

	iter := g.api.Customers.List(params)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", providerError(err, "не удалось найти клиента в Stripe")
	}
	return "", nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req repository.CheckoutSessionRequest) (*repository.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.UnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	switch {
	case req.CustomerID != "":
		params.Customer = stripe.String(req.CustomerID)
	case req.CustomerEmail != "":
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, providerError(err, "не удалось создать checkout-сессию")
	}
	return toSession(s), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, id string) (*repository.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, providerError(err, "не удалось получить checkout-сессию")
	}
	return toSession(s), nil
}

func (g *StripeGateway) ExpireCheckoutSession(ctx context.Context, id string) (*repository.CheckoutSession, error) {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Expire(id, params)
	if err != nil {
		return nil, providerError(err, "не удалось закрыть checkout-сессию")
	}
	return toSession(s), nil
}

func toSession(s *stripe.CheckoutSession) *repository.CheckoutSession {
	return &repository.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Metadata:      s.Metadata,
	}
}

// providerError отдаёт клиенту сообщение Stripe, если оно есть.
func providerError(err error, fallback string) *apperror.AppError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return apperror.Wrap(err, apperror.ErrCodePaymentProvider, stripeErr.Msg)
	}
	return apperror.Wrap(err, apperror.ErrCodePaymentProvider, fallback)
}

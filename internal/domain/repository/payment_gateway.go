package repository

import "context"

// CheckoutSessionRequest - данные для создания hosted checkout-сессии.
type CheckoutSessionRequest struct {
	ProductName   string
	Description   string
	UnitAmount    int64
	Currency      string
	SuccessURL    string
	CancelURL     string
	CustomerID    string
	CustomerEmail string
	Metadata      map[string]string
}

// CheckoutSession - состояние сессии у провайдера, AmountTotal в минимальных единицах валюты.
type CheckoutSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Metadata      map[string]string
}

// PaymentStatusPaid - статус оплаты сессии, после которого бронирование считается оплаченным.
const PaymentStatusPaid = "paid"

const (
	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"
)

// PaymentGateway - платёжный провайдер. Все ошибки имеют KindPaymentProvider.
type PaymentGateway interface {
	// FindCustomerByEmail возвращает id существующего клиента или "" если его нет.
	FindCustomerByEmail(ctx context.Context, email string) (string, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	// ExpireCheckoutSession закрывает открытую сессию, после этого оплатить её нельзя.
	ExpireCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
}

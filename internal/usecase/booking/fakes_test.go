package booking_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

type fakeBookingRepository struct {
	mu        sync.Mutex
	bookings  map[uuid.UUID]*entity.Booking
	createErr error
	setErr    error
	// staleUpdate имитирует параллельное изменение строки.
	staleUpdate   bool
	statusUpdates int
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (r *fakeBookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, apperror.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepository) SetSessionID(ctx context.Context, id uuid.UUID, sessionID string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return apperror.ErrBookingNotFound
	}
	b.StripeSessionID = &sessionID
	return nil
}

func (r *fakeBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to valueobject.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statusUpdates++
	b, ok := r.bookings[id]
	if !ok || r.staleUpdate || b.Status != from {
		return false, nil
	}
	b.Status = to
	return true, nil
}

func (r *fakeBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingView, error) {
	return nil, nil
}

func (r *fakeBookingRepository) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepository) only() *entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		return b
	}
	return nil
}

type fakeLawyerRepository struct {
	lawyers map[uuid.UUID]*entity.Lawyer
}

func newFakeLawyerRepository(lawyers ...*entity.Lawyer) *fakeLawyerRepository {
	r := &fakeLawyerRepository{lawyers: make(map[uuid.UUID]*entity.Lawyer)}
	for _, l := range lawyers {
		r.lawyers[l.ID] = l
	}
	return r
}

func (r *fakeLawyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	if l, ok := r.lawyers[id]; ok {
		return l, nil
	}
	return nil, apperror.ErrLawyerNotFound
}

func (r *fakeLawyerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Lawyer, error) {
	for _, l := range r.lawyers {
		if l.UserID == userID {
			return l, nil
		}
	}
	return nil, apperror.ErrProfileNotFound
}

func (r *fakeLawyerRepository) List(ctx context.Context) ([]*entity.Lawyer, error) {
	return nil, nil
}

func (r *fakeLawyerRepository) Create(ctx context.Context, l *entity.Lawyer) error {
	r.lawyers[l.ID] = l
	return nil
}

type fakeGateway struct {
	customers  map[string]string
	sessions   map[string]*repository.CheckoutSession
	lastReq    *repository.CheckoutSessionRequest
	createErr  error
	lookupErr  error
	expireErr  error
	expired    []string
	nextNumber int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		customers: make(map[string]string),
		sessions:  make(map[string]*repository.CheckoutSession),
	}
}

func (g *fakeGateway) FindCustomerByEmail(ctx context.Context, email string) (string, error) {
	if g.lookupErr != nil {
		return "", g.lookupErr
	}
	return g.customers[email], nil
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, req repository.CheckoutSessionRequest) (*repository.CheckoutSession, error) {
	g.lastReq = &req
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.nextNumber++
	s := &repository.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%d", g.nextNumber),
		URL:           fmt.Sprintf("https://checkout.stripe.test/pay/cs_test_%d", g.nextNumber),
		Status:        repository.SessionStatusOpen,
		PaymentStatus: "unpaid",
		AmountTotal:   req.UnitAmount,
		Metadata:      req.Metadata,
	}
	g.sessions[s.ID] = s
	return s, nil
}

func (g *fakeGateway) GetCheckoutSession(ctx context.Context, id string) (*repository.CheckoutSession, error) {
	s, ok := g.sessions[id]
	if !ok {
		return nil, apperror.New(apperror.ErrCodePaymentProvider, "No such checkout.session: "+id)
	}
	return s, nil
}

func (g *fakeGateway) ExpireCheckoutSession(ctx context.Context, id string) (*repository.CheckoutSession, error) {
	if g.expireErr != nil {
		return nil, g.expireErr
	}
	s, ok := g.sessions[id]
	if !ok {
		return nil, apperror.New(apperror.ErrCodePaymentProvider, "No such checkout.session: "+id)
	}
	if s.Status != repository.SessionStatusOpen {
		return nil, apperror.New(apperror.ErrCodePaymentProvider, "Only Checkout Sessions with a status of `open` can be expired.")
	}
	s.Status = repository.SessionStatusExpired
	g.expired = append(g.expired, id)
	return s, nil
}

// pay имитирует успешную оплату сессии клиентом.
func (g *fakeGateway) pay(id string) bool {
	s, ok := g.sessions[id]
	if !ok || s.Status != repository.SessionStatusOpen {
		return false
	}
	s.Status = repository.SessionStatusComplete
	s.PaymentStatus = repository.PaymentStatusPaid
	return true
}

var errDriver = errors.New("pq: connection refused")

func asUser(userID uuid.UUID, email string) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: userID, Email: email, Role: "authenticated"})
}

func newLawyer(rate int64, name string) *entity.Lawyer {
	l := &entity.Lawyer{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		BarCouncilID:    "D/1234/2015",
		HourlyRate:      rate,
		City:            "Delhi",
		Specializations: []string{"UPI Fraud"},
	}
	if name != "" {
		l.Profile = &entity.Profile{UserID: l.UserID, FullName: name}
	}
	return l
}

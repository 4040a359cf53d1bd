package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// RecentLimit - сколько последних бронирований показывает дашборд клиента.
const RecentLimit = 5

type UserDashboard struct {
	Bookings      []*entity.BookingView
	Recent        []*entity.BookingView
	TotalBookings int
	Upcoming      int
	TotalSpent    int64
}

type LawyerDashboard struct {
	Lawyer            *entity.Lawyer
	Bookings          []*entity.Booking
	Slots             []*entity.AvailabilitySlot
	TotalBookings     int
	DistinctClients   int
	TotalEarnings     int64
	ThisMonthEarnings int64
}

type GetUserDashboardUseCase struct {
	bookingRepo repository.BookingRepository
}

func NewGetUserDashboardUseCase(bookingRepo repository.BookingRepository) *GetUserDashboardUseCase {
	return &GetUserDashboardUseCase{bookingRepo: bookingRepo}
}

func (uc *GetUserDashboardUseCase) Execute(ctx context.Context) (*UserDashboard, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	bookings, err := uc.bookingRepo.ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить бронирования")
	}

	d := &UserDashboard{Bookings: bookings, TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.Status.IsSettled() {
			d.Upcoming++
			d.TotalSpent += b.TotalAmount
		}
	}
	d.Recent = bookings
	if len(d.Recent) > RecentLimit {
		d.Recent = d.Recent[:RecentLimit]
	}
	return d, nil
}

type GetLawyerDashboardUseCase struct {
	lawyerRepo  repository.LawyerRepository
	bookingRepo repository.BookingRepository
	slotRepo    repository.AvailabilityRepository
	now         func() time.Time
}

func NewGetLawyerDashboardUseCase(
	lawyerRepo repository.LawyerRepository,
	bookingRepo repository.BookingRepository,
	slotRepo repository.AvailabilityRepository,
	now func() time.Time,
) *GetLawyerDashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetLawyerDashboardUseCase{lawyerRepo: lawyerRepo, bookingRepo: bookingRepo, slotRepo: slotRepo, now: now}
}

func (uc *GetLawyerDashboardUseCase) Execute(ctx context.Context) (*LawyerDashboard, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	lawyer, err := uc.lawyerRepo.FindByUserID(ctx, id.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrProfileNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить профиль юриста")
	}

	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		bookings []*entity.Booking
		slots    []*entity.AvailabilitySlot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListByLawyer(gctx, lawyer.ID)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = uc.slotRepo.ListUpcoming(gctx, lawyer.ID, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить дашборд юриста")
	}

	d := &LawyerDashboard{
		Lawyer:        lawyer,
		Bookings:      bookings,
		Slots:         slots,
		TotalBookings: len(bookings),
	}

	clients := make(map[uuid.UUID]struct{})
	for _, b := range bookings {
		clients[b.UserID] = struct{}{}
		if !b.Status.IsSettled() {
			continue
		}
		d.TotalEarnings += b.BaseAmount
		created := b.CreatedAt.In(now.Location())
		if created.Year() == now.Year() && created.Month() == now.Month() {
			d.ThisMonthEarnings += b.BaseAmount
		}
	}
	d.DistinctClients = len(clients)
	return d, nil
}

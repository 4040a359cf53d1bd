package lawyer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
	"github.com/cyberlawyerhub/backend/internal/service"
	"github.com/cyberlawyerhub/backend/internal/usecase/lawyer"
)

type fakeLawyerRepository struct {
	lawyers   []*entity.Lawyer
	listCalls int
	listErr   error
}

func (r *fakeLawyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	for _, l := range r.lawyers {
		if l.ID == id {
			return l, nil
		}
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
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]*entity.Lawyer(nil), r.lawyers...), nil
}

func (r *fakeLawyerRepository) Create(ctx context.Context, l *entity.Lawyer) error {
	r.lawyers = append(r.lawyers, l)
	return nil
}

func ptr[T any](v T) *T { return &v }

func directory() *fakeLawyerRepository {
	return &fakeLawyerRepository{lawyers: []*entity.Lawyer{
		{
			ID: uuid.New(), UserID: uuid.New(), City: "Delhi", HourlyRate: 1500,
			Specializations: []string{"UPI Fraud", "Phishing"}, Rating: ptr(4.8),
			Profile: &entity.Profile{FullName: "Adv. Priya Menon"},
		},
		{
			ID: uuid.New(), UserID: uuid.New(), City: "Mumbai", HourlyRate: 3000,
			Specializations: []string{"Investment Scam"}, Rating: ptr(4.1),
			Profile: &entity.Profile{FullName: "Adv. Rohan Shah"},
		},
		{
			ID: uuid.New(), UserID: uuid.New(), City: "Pune", HourlyRate: 800,
			Specializations: []string{"Ransomware"},
		},
	}}
}

func names(ls []*entity.Lawyer) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.DisplayName())
	}
	return out
}

func TestSearchLawyers_Filters(t *testing.T) {
	uc := lawyer.NewSearchLawyersUseCase(directory(), nil, 0)
	ctx := context.Background()

	got, err := uc.Execute(ctx, lawyer.Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, _ = uc.Execute(ctx, lawyer.Filter{Search: "priya"})
	assert.Equal(t, []string{"Adv. Priya Menon"}, names(got))

	got, _ = uc.Execute(ctx, lawyer.Filter{Search: "SCAM"})
	assert.Equal(t, []string{"Adv. Rohan Shah"}, names(got))

	got, _ = uc.Execute(ctx, lawyer.Filter{City: "All Cities"})
	assert.Len(t, got, 3)

	got, _ = uc.Execute(ctx, lawyer.Filter{City: "Pune"})
	assert.Equal(t, []string{"Lawyer"}, names(got))

	got, _ = uc.Execute(ctx, lawyer.Filter{MinRate: ptr(int64(1000)), MaxRate: ptr(int64(2000))})
	assert.Equal(t, []string{"Adv. Priya Menon"}, names(got))

	got, _ = uc.Execute(ctx, lawyer.Filter{MinRating: ptr(4.5)})
	assert.Equal(t, []string{"Adv. Priya Menon"}, names(got))

	// отсутствующий рейтинг считается нулём
	got, _ = uc.Execute(ctx, lawyer.Filter{MinRating: ptr(0.0)})
	assert.Len(t, got, 3)
}

func TestSearchLawyers_CachesDirectoryUntilRegistration(t *testing.T) {
	repo := directory()
	cache := service.NewCacheService()
	search := lawyer.NewSearchLawyersUseCase(repo, cache, time.Minute)
	register := lawyer.NewRegisterLawyerUseCase(repo, cache)

	_, err := search.Execute(context.Background(), lawyer.Filter{})
	require.NoError(t, err)
	_, err = search.Execute(context.Background(), lawyer.Filter{City: "Delhi"})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: uuid.New()})
	_, err = register.Execute(ctx, lawyer.RegisterLawyerInput{
		FullName: "Adv. Kavya Iyer", BarCouncilID: "TN/77/2019", City: "Chennai",
	})
	require.NoError(t, err)

	got, err := search.Execute(context.Background(), lawyer.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Len(t, got, 4)
}

func TestSearchLawyers_StoreFailure(t *testing.T) {
	repo := &fakeLawyerRepository{listErr: errors.New("pq: timeout")}
	_, err := lawyer.NewSearchLawyersUseCase(repo, nil, 0).Execute(context.Background(), lawyer.Filter{})
	assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
}

func TestGetLawyer_QuotesMatchCheckout(t *testing.T) {
	repo := directory()
	target := repo.lawyers[0]

	details, err := lawyer.NewGetLawyerUseCase(repo).Execute(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(938), details.HalfHour.TotalAmount)
	assert.Equal(t, int64(1875), details.FullHour.TotalAmount)

	_, err = lawyer.NewGetLawyerUseCase(repo).Execute(context.Background(), uuid.New())
	assert.Equal(t, "Lawyer not found", apperror.MessageOf(err))
}

func TestRegisterLawyer(t *testing.T) {
	repo := &fakeLawyerRepository{}
	uc := lawyer.NewRegisterLawyerUseCase(repo, nil)
	userID := uuid.New()
	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: userID})

	l, err := uc.Execute(ctx, lawyer.RegisterLawyerInput{
		FullName:        " Adv. Kavya Iyer ",
		Phone:           "9876543210",
		BarCouncilID:    "TN/77/2019",
		City:            "Chennai",
		Specializations: []string{"Phishing", "Phishing", "Ransomware"},
	})
	require.NoError(t, err)
	assert.Equal(t, userID, l.UserID)
	assert.Equal(t, int64(1500), l.HourlyRate, "default rate")
	assert.Equal(t, []string{"Phishing", "Ransomware"}, l.Specializations)
	require.NotNil(t, l.Profile)
	assert.Equal(t, "Adv. Kavya Iyer", l.Profile.FullName)
	assert.Equal(t, "9876543210", *l.Profile.Phone)

	_, err = uc.Execute(ctx, lawyer.RegisterLawyerInput{FullName: "Again", BarCouncilID: "X", City: "Delhi"})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestRegisterLawyer_Validation(t *testing.T) {
	uc := lawyer.NewRegisterLawyerUseCase(&fakeLawyerRepository{}, nil)
	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: uuid.New()})

	cases := map[string]lawyer.RegisterLawyerInput{
		"no bar council id": {FullName: "Adv. Meera", City: "Delhi"},
		"no name":           {BarCouncilID: "X", City: "Delhi"},
		"short name":        {FullName: "A", BarCouncilID: "X", City: "Delhi"},
		"unknown city":      {FullName: "Adv. Meera", BarCouncilID: "X", City: "Goa"},
		"rate too high":     {FullName: "Adv. Meera", BarCouncilID: "X", City: "Delhi", HourlyRate: 100001},
		"negative rate":     {FullName: "Adv. Meera", BarCouncilID: "X", City: "Delhi", HourlyRate: -5},
		"unknown spec":      {FullName: "Adv. Meera", BarCouncilID: "X", City: "Delhi", Specializations: []string{"Tax"}},
		"bad phone":         {FullName: "Adv. Meera", BarCouncilID: "X", City: "Delhi", Phone: "12345"},
		"bio too long":      {FullName: "Adv. Meera", BarCouncilID: "X", City: "Delhi", Bio: strings.Repeat("b", 1001)},
	}
	for name, in := range cases {
		_, err := uc.Execute(ctx, in)
		assert.Equal(t, apperror.KindInvalidRequest, apperror.KindOf(err), name)
	}

	_, err := uc.Execute(context.Background(), cases["unknown city"])
	assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
}

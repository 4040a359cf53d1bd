package lawyer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
	"github.com/cyberlawyerhub/backend/internal/validation"
)

type RegisterLawyerInput struct {
	FullName        string
	Phone           string
	BarCouncilID    string
	City            string
	HourlyRate      int64
	Specializations []string
	Bio             string
	ExperienceYears *int
}

// RegisterLawyerUseCase публикует профиль юриста для текущего пользователя.
type RegisterLawyerUseCase struct {
	lawyerRepo repository.LawyerRepository
	cache      Cache
}

func NewRegisterLawyerUseCase(lawyerRepo repository.LawyerRepository, cache Cache) *RegisterLawyerUseCase {
	return &RegisterLawyerUseCase{lawyerRepo: lawyerRepo, cache: cache}
}

func (uc *RegisterLawyerUseCase) Execute(ctx context.Context, input RegisterLawyerInput) (*entity.Lawyer, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	l, err := buildLawyer(id.UserID, input)
	if err != nil {
		return nil, err
	}

	existing, err := uc.lawyerRepo.FindByUserID(ctx, id.UserID)
	switch {
	case err == nil && existing != nil:
		return nil, apperror.New(apperror.ErrCodeConflict, "профиль юриста уже существует")
	case err != nil && !apperror.IsNotFound(err):
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось проверить профиль юриста")
	}

	if err := uc.lawyerRepo.Create(ctx, l); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать профиль юриста")
	}

	if uc.cache != nil {
		uc.cache.Delete(DirectoryCacheKey)
	}
	return l, nil
}

func buildLawyer(userID uuid.UUID, input RegisterLawyerInput) (*entity.Lawyer, error) {
	fullName := strings.TrimSpace(input.FullName)
	if err := validation.ValidateFullName(fullName); err != nil {
		return nil, invalid(err)
	}
	barID := strings.TrimSpace(input.BarCouncilID)
	if err := validation.ValidateBarCouncilID(barID); err != nil {
		return nil, invalid(err)
	}
	if !valueobject.IsKnownCity(input.City) {
		return nil, apperror.New(apperror.ErrCodeValidation, "неизвестный город: "+input.City)
	}
	phone := strings.TrimSpace(input.Phone)
	if phone != "" && !validation.IsPhone(phone) {
		return nil, apperror.New(apperror.ErrCodeValidation, "телефон должен состоять из 10 цифр")
	}
	if err := validation.ValidateBio(input.Bio); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateExperienceYears(input.ExperienceYears); err != nil {
		return nil, invalid(err)
	}

	rate := input.HourlyRate
	if rate == 0 {
		rate = valueobject.DefaultHourlyRate
	}
	if rate < 0 || rate > valueobject.MaxHourlyRate {
		return nil, apperror.New(apperror.ErrCodeValidation, "ставка должна быть от 1 до 100000")
	}

	specs := make([]string, 0, len(input.Specializations))
	seen := make(map[string]struct{}, len(input.Specializations))
	for _, s := range input.Specializations {
		s = strings.TrimSpace(s)
		if !valueobject.IsKnownSpecialization(s) {
			return nil, apperror.New(apperror.ErrCodeValidation, "неизвестная специализация: "+s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		specs = append(specs, s)
	}

	profile := &entity.Profile{UserID: userID, FullName: fullName}
	if phone != "" {
		profile.Phone = &phone
	}

	l := &entity.Lawyer{
		ID:              uuid.New(),
		UserID:          userID,
		BarCouncilID:    barID,
		HourlyRate:      rate,
		City:            input.City,
		Specializations: specs,
		ExperienceYears: input.ExperienceYears,
		CreatedAt:       time.Now().UTC(),
		Profile:         profile,
	}
	if bio := strings.TrimSpace(input.Bio); bio != "" {
		l.Bio = &bio
	}
	return l, nil
}

func invalid(err error) error {
	return apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
}

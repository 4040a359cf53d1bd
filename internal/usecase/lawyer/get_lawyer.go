package lawyer

import (
	"context"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

// LawyerDetails - карточка юриста с теми же суммами, что спишет checkout.
type LawyerDetails struct {
	Lawyer   *entity.Lawyer
	HalfHour valueobject.Price
	FullHour valueobject.Price
}

type GetLawyerUseCase struct {
	lawyerRepo repository.LawyerRepository
}

func NewGetLawyerUseCase(lawyerRepo repository.LawyerRepository) *GetLawyerUseCase {
	return &GetLawyerUseCase{lawyerRepo: lawyerRepo}
}

func (uc *GetLawyerUseCase) Execute(ctx context.Context, id uuid.UUID) (*LawyerDetails, error) {
	l, err := uc.lawyerRepo.FindByID(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrLawyerNotFound
		}
		return nil, err
	}

	half, err := valueobject.CalculatePrice(l.HourlyRate, valueobject.Duration30)
	if err != nil {
		return nil, err
	}
	full, err := valueobject.CalculatePrice(l.HourlyRate, valueobject.Duration60)
	if err != nil {
		return nil, err
	}

	return &LawyerDetails{Lawyer: l, HalfHour: half, FullHour: full}, nil
}

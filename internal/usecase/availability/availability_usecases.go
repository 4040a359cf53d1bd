package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/pkg/identity"
)

// Clock возвращает текущее время, подменяется в тестах.
type Clock func() time.Time

type CreateSlotInput struct {
	Date      string
	StartTime string
	EndTime   string
}

type CreateSlotUseCase struct {
	slotRepo   repository.AvailabilityRepository
	lawyerRepo repository.LawyerRepository
	now        Clock
}

func NewCreateSlotUseCase(slotRepo repository.AvailabilityRepository, lawyerRepo repository.LawyerRepository, now Clock) *CreateSlotUseCase {
	if now == nil {
		now = time.Now
	}
	return &CreateSlotUseCase{slotRepo: slotRepo, lawyerRepo: lawyerRepo, now: now}
}

func (uc *CreateSlotUseCase) Execute(ctx context.Context, input CreateSlotInput) (*entity.AvailabilitySlot, error) {
	lawyer, err := currentLawyer(ctx, uc.lawyerRepo)
	if err != nil {
		return nil, err
	}

	slot, err := entity.NewAvailabilitySlot(lawyer.ID, input.Date, input.StartTime, input.EndTime, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.slotRepo.Create(ctx, slot); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось добавить слот")
	}
	return slot, nil
}

type ListUpcomingSlotsUseCase struct {
	slotRepo repository.AvailabilityRepository
	now      Clock
}

func NewListUpcomingSlotsUseCase(slotRepo repository.AvailabilityRepository, now Clock) *ListUpcomingSlotsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ListUpcomingSlotsUseCase{slotRepo: slotRepo, now: now}
}

func (uc *ListUpcomingSlotsUseCase) Execute(ctx context.Context, lawyerID uuid.UUID) ([]*entity.AvailabilitySlot, error) {
	slots, err := uc.slotRepo.ListUpcoming(ctx, lawyerID, StartOfDay(uc.now()))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить слоты")
	}
	return slots, nil
}

type DeleteSlotUseCase struct {
	slotRepo   repository.AvailabilityRepository
	lawyerRepo repository.LawyerRepository
}

func NewDeleteSlotUseCase(slotRepo repository.AvailabilityRepository, lawyerRepo repository.LawyerRepository) *DeleteSlotUseCase {
	return &DeleteSlotUseCase{slotRepo: slotRepo, lawyerRepo: lawyerRepo}
}

func (uc *DeleteSlotUseCase) Execute(ctx context.Context, slotID uuid.UUID) error {
	lawyer, err := currentLawyer(ctx, uc.lawyerRepo)
	if err != nil {
		return err
	}

	slot, err := uc.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.ErrSlotNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить слот")
	}
	if slot.LawyerID != lawyer.ID {
		return apperror.ErrForbidden
	}
	if !slot.CanBeDeleted() {
		return apperror.New(apperror.ErrCodeConflict, "забронированный слот нельзя удалить")
	}

	deleted, err := uc.slotRepo.Delete(ctx, slotID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить слот")
	}
	if !deleted {
		return apperror.New(apperror.ErrCodeConflict, "забронированный слот нельзя удалить")
	}
	return nil
}

// currentLawyer возвращает профиль юриста текущего пользователя.
func currentLawyer(ctx context.Context, lawyerRepo repository.LawyerRepository) (*entity.Lawyer, error) {
	id, ok := identity.FromContext(ctx)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}
	lawyer, err := lawyerRepo.FindByUserID(ctx, id.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrProfileNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить профиль юриста")
	}
	return lawyer, nil
}

// StartOfDay обрезает время до полуночи UTC той же календарной даты.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

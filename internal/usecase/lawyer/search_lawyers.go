package lawyer

import (
	"context"
	"strings"
	"time"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/repository"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

// DirectoryCacheKey - ключ нефильтрованного каталога в кэше.
const DirectoryCacheKey = "directory:lawyers"

// Cache - in-memory кэш с TTL.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
}

type Filter struct {
	Search    string
	City      string
	MinRate   *int64
	MaxRate   *int64
	MinRating *float64
}

type SearchLawyersUseCase struct {
	lawyerRepo repository.LawyerRepository
	cache      Cache
	ttl        time.Duration
}

func NewSearchLawyersUseCase(lawyerRepo repository.LawyerRepository, cache Cache, ttl time.Duration) *SearchLawyersUseCase {
	return &SearchLawyersUseCase{lawyerRepo: lawyerRepo, cache: cache, ttl: ttl}
}

func (uc *SearchLawyersUseCase) Execute(ctx context.Context, filter Filter) ([]*entity.Lawyer, error) {
	all, err := uc.directory(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Lawyer, 0, len(all))
	for _, l := range all {
		if filter.Matches(l) {
			result = append(result, l)
		}
	}
	return result, nil
}

func (uc *SearchLawyersUseCase) directory(ctx context.Context) ([]*entity.Lawyer, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(DirectoryCacheKey); ok {
			if lawyers, ok := cached.([]*entity.Lawyer); ok {
				return lawyers, nil
			}
		}
	}

	lawyers, err := uc.lawyerRepo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось загрузить каталог юристов")
	}

	if uc.cache != nil && uc.ttl > 0 {
		uc.cache.Set(DirectoryCacheKey, lawyers, uc.ttl)
	}
	return lawyers, nil
}

// Matches - поиск по имени и специализациям без учёта регистра плюс фильтры города, ставки и рейтинга.
func (f Filter) Matches(l *entity.Lawyer) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		name := ""
		if l.Profile != nil {
			name = strings.ToLower(l.Profile.FullName)
		}
		specs := strings.ToLower(strings.Join(l.Specializations, " "))
		if !strings.Contains(name, q) && !strings.Contains(specs, q) {
			return false
		}
	}

	if f.City != "" && f.City != valueobject.AllCities && l.City != f.City {
		return false
	}
	if f.MinRate != nil && l.HourlyRate < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && l.HourlyRate > *f.MaxRate {
		return false
	}
	if f.MinRating != nil && l.RatingValue() < *f.MinRating {
		return false
	}
	return true
}

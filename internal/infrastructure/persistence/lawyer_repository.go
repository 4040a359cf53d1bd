package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/repository/common"
)

const lawyerSelect = `
	SELECT l.id, l.user_id, l.bar_council_id, l.photo_url, l.bio, l.experience_years,
	       l.hourly_rate, l.city, l.specializations, l.is_verified, l.rating,
	       l.review_count, l.created_at,
	       p.user_id AS profile_user_id,
	       p.full_name AS profile_full_name,
	       p.avatar_url AS profile_avatar_url,
	       p.phone AS profile_phone
	FROM lawyers l
	LEFT JOIN profiles p ON p.user_id = l.user_id`

type LawyerRepository struct {
	db *sqlx.DB
}

func NewLawyerRepository(db *sqlx.DB) *LawyerRepository {
	return &LawyerRepository{db: db}
}

func (r *LawyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lawyer, error) {
	return r.findOne(ctx, apperror.ErrLawyerNotFound, lawyerSelect+` WHERE l.id = $1`, id)
}

func (r *LawyerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Lawyer, error) {
	return r.findOne(ctx, apperror.ErrProfileNotFound, lawyerSelect+` WHERE l.user_id = $1`, userID)
}

func (r *LawyerRepository) findOne(ctx context.Context, notFound error, query string, arg uuid.UUID) (*entity.Lawyer, error) {
	row, err := common.GetOne[lawyerRow](ctx, r.db, notFound, query, arg)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить юриста")
	}
	return row.toEntity(), nil
}

func (r *LawyerRepository) List(ctx context.Context) ([]*entity.Lawyer, error) {
	query := lawyerSelect + ` ORDER BY l.is_verified DESC, l.rating DESC NULLS LAST, l.created_at ASC`

	var rows []lawyerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить список юристов")
	}

	result := make([]*entity.Lawyer, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toEntity())
	}
	return result, nil
}

// Create сохраняет профиль (upsert) и запись юриста в одной транзакции.
func (r *LawyerRepository) Create(ctx context.Context, l *entity.Lawyer) error {
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if l.Profile != nil {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO profiles (user_id, full_name, avatar_url, phone)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (user_id) DO UPDATE
				SET full_name = EXCLUDED.full_name,
				    phone = COALESCE(EXCLUDED.phone, profiles.phone),
				    updated_at = NOW()
			`, l.UserID, l.Profile.FullName, l.Profile.AvatarURL, l.Profile.Phone)
			if err != nil {
				return err
			}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO lawyers (id, user_id, bar_council_id, photo_url, bio, experience_years,
			                     hourly_rate, city, specializations, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
			l.ID,
			l.UserID,
			l.BarCouncilID,
			l.PhotoURL,
			l.Bio,
			l.ExperienceYears,
			l.HourlyRate,
			l.City,
			pq.Array(l.Specializations),
			l.CreatedAt,
		)
		return err
	})
	if err != nil {
		if common.IsUniqueViolation(err) {
			return apperror.Wrap(err, apperror.ErrCodeConflict, "профиль юриста уже существует")
		}
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать профиль юриста")
	}
	return nil
}

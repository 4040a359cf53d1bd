package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/repository/common"
)

const slotSelect = `
	SELECT id, lawyer_id, date,
	       to_char(start_time, 'HH24:MI') AS start_time,
	       to_char(end_time, 'HH24:MI') AS end_time,
	       is_booked, created_at
	FROM lawyer_availability`

type AvailabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) Create(ctx context.Context, s *entity.AvailabilitySlot) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lawyer_availability (id, lawyer_id, date, start_time, end_time, is_booked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, s.ID, s.LawyerID, s.Date.Format(entity.DateLayout), s.StartTime, s.EndTime, s.IsBooked, s.CreatedAt)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось добавить слот")
	}
	return nil
}

func (r *AvailabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	row, err := common.GetOne[slotRow](ctx, r.db, apperror.ErrSlotNotFound, slotSelect+` WHERE id = $1`, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить слот")
	}
	return row.toEntity(), nil
}

func (r *AvailabilityRepository) ListUpcoming(ctx context.Context, lawyerID uuid.UUID, from time.Time) ([]*entity.AvailabilitySlot, error) {
	query := slotSelect + ` WHERE lawyer_id = $1 AND date >= $2::date ORDER BY date ASC, start_time ASC`

	var rows []slotRow
	if err := r.db.SelectContext(ctx, &rows, query, lawyerID, from.Format(entity.DateLayout)); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить слоты")
	}

	result := make([]*entity.AvailabilitySlot, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toEntity())
	}
	return result, nil
}

// Delete удаляет слот только если он не забронирован.
func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lawyer_availability WHERE id = $1 AND is_booked = FALSE`, id)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось удалить слот")
	}
	return common.ExpectAffected(res)
}

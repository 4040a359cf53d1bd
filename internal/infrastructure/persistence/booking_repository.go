package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
	"github.com/cyberlawyerhub/backend/internal/repository/common"
)

const bookingColumns = `
	b.id, b.user_id, b.lawyer_id, b.duration_minutes, b.base_amount, b.platform_fee,
	b.total_amount, b.currency, b.status, b.stripe_session_id, b.start_time, b.created_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, lawyer_id, duration_minutes, base_amount, platform_fee,
		                      total_amount, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.UserID,
		b.LawyerID,
		b.DurationMinutes,
		b.BaseAmount,
		b.PlatformFee,
		b.TotalAmount,
		b.Currency,
		string(b.Status),
		b.CreatedAt,
	)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось создать бронирование")
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	row, err := common.GetOne[bookingRow](ctx, r.db, apperror.ErrBookingNotFound, query, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить бронирование")
	}
	return row.toEntity()
}

func (r *BookingRepository) SetSessionID(ctx context.Context, id uuid.UUID, sessionID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET stripe_session_id = $2 WHERE id = $1`, id, sessionID)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить checkout-сессию")
	}
	ok, err := common.ExpectAffected(res)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось сохранить checkout-сессию")
	}
	if !ok {
		return apperror.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to valueobject.BookingStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось обновить статус бронирования")
	}
	return common.ExpectAffected(res)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.BookingView, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       l.city AS lawyer_city,
		       p.full_name AS lawyer_name
		FROM bookings b
		LEFT JOIN lawyers l ON l.id = b.lawyer_id
		LEFT JOIN profiles p ON p.user_id = l.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	var rows []bookingViewRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить бронирования клиента")
	}

	result := make([]*entity.BookingView, 0, len(rows))
	for i := range rows {
		v, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *BookingRepository) ListByLawyer(ctx context.Context, lawyerID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.lawyer_id = $1 ORDER BY b.created_at DESC`

	var rows []bookingRow
	if err := r.db.SelectContext(ctx, &rows, query, lawyerID); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabaseError, "не удалось получить бронирования юриста")
	}

	result := make([]*entity.Booking, 0, len(rows))
	for i := range rows {
		b, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

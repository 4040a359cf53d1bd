package persistence

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
)

// Строки выборок. Колонки из LEFT JOIN читаются в sql.Null* и нормализуются в сущности здесь.

type bookingRow struct {
	ID              uuid.UUID      `db:"id"`
	UserID          uuid.UUID      `db:"user_id"`
	LawyerID        uuid.UUID      `db:"lawyer_id"`
	DurationMinutes int            `db:"duration_minutes"`
	BaseAmount      int64          `db:"base_amount"`
	PlatformFee     int64          `db:"platform_fee"`
	TotalAmount     int64          `db:"total_amount"`
	Currency        string         `db:"currency"`
	Status          string         `db:"status"`
	StripeSessionID sql.NullString `db:"stripe_session_id"`
	StartTime       sql.NullTime   `db:"start_time"`
	CreatedAt       time.Time      `db:"created_at"`
}

type bookingViewRow struct {
	bookingRow
	LawyerCity sql.NullString `db:"lawyer_city"`
	LawyerName sql.NullString `db:"lawyer_name"`
}

type lawyerRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	BarCouncilID    string          `db:"bar_council_id"`
	PhotoURL        sql.NullString  `db:"photo_url"`
	Bio             sql.NullString  `db:"bio"`
	ExperienceYears sql.NullInt64   `db:"experience_years"`
	HourlyRate      int64           `db:"hourly_rate"`
	City            string          `db:"city"`
	Specializations pq.StringArray  `db:"specializations"`
	IsVerified      bool            `db:"is_verified"`
	Rating          sql.NullFloat64 `db:"rating"`
	ReviewCount     int             `db:"review_count"`
	CreatedAt       time.Time       `db:"created_at"`

	ProfileUserID    uuid.NullUUID  `db:"profile_user_id"`
	ProfileFullName  sql.NullString `db:"profile_full_name"`
	ProfileAvatarURL sql.NullString `db:"profile_avatar_url"`
	ProfilePhone     sql.NullString `db:"profile_phone"`
}

type slotRow struct {
	ID        uuid.UUID `db:"id"`
	LawyerID  uuid.UUID `db:"lawyer_id"`
	Date      time.Time `db:"date"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	IsBooked  bool      `db:"is_booked"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *bookingRow) toEntity() (*entity.Booking, error) {
	status, err := valueobject.NewBookingStatus(r.Status)
	if err != nil {
		return nil, err
	}

	b := &entity.Booking{
		ID:              r.ID,
		UserID:          r.UserID,
		LawyerID:        r.LawyerID,
		DurationMinutes: r.DurationMinutes,
		BaseAmount:      r.BaseAmount,
		PlatformFee:     r.PlatformFee,
		TotalAmount:     r.TotalAmount,
		Currency:        r.Currency,
		Status:          status,
		StripeSessionID: nullString(r.StripeSessionID),
		CreatedAt:       r.CreatedAt,
	}
	if r.StartTime.Valid {
		t := r.StartTime.Time
		b.StartTime = &t
	}
	return b, nil
}

func (r *bookingViewRow) toEntity() (*entity.BookingView, error) {
	b, err := r.bookingRow.toEntity()
	if err != nil {
		return nil, err
	}
	name := r.LawyerName.String
	if name == "" {
		name = "Lawyer"
	}
	return &entity.BookingView{Booking: *b, LawyerCity: r.LawyerCity.String, LawyerName: name}, nil
}

func (r *lawyerRow) toEntity() *entity.Lawyer {
	l := &entity.Lawyer{
		ID:              r.ID,
		UserID:          r.UserID,
		BarCouncilID:    r.BarCouncilID,
		PhotoURL:        nullString(r.PhotoURL),
		Bio:             nullString(r.Bio),
		HourlyRate:      r.HourlyRate,
		City:            r.City,
		Specializations: []string(r.Specializations),
		IsVerified:      r.IsVerified,
		ReviewCount:     r.ReviewCount,
		CreatedAt:       r.CreatedAt,
	}
	if l.Specializations == nil {
		l.Specializations = []string{}
	}
	if r.ExperienceYears.Valid {
		years := int(r.ExperienceYears.Int64)
		l.ExperienceYears = &years
	}
	if r.Rating.Valid {
		rating := r.Rating.Float64
		l.Rating = &rating
	}
	if r.ProfileUserID.Valid {
		l.Profile = &entity.Profile{
			UserID:    r.ProfileUserID.UUID,
			FullName:  r.ProfileFullName.String,
			AvatarURL: nullString(r.ProfileAvatarURL),
			Phone:     nullString(r.ProfilePhone),
		}
	}
	return l
}

func (r *slotRow) toEntity() *entity.AvailabilitySlot {
	return &entity.AvailabilitySlot{
		ID:        r.ID,
		LawyerID:  r.LawyerID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsBooked:  r.IsBooked,
		CreatedAt: r.CreatedAt,
	}
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

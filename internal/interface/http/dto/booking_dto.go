package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	LawyerID        uuid.UUID  `json:"lawyer_id"`
	DurationMinutes int        `json:"duration_minutes"`
	BaseAmount      int64      `json:"base_amount"`
	PlatformFee     int64      `json:"platform_fee"`
	TotalAmount     int64      `json:"total_amount"`
	Currency        string     `json:"currency"`
	Status          string     `json:"status"`
	StartTime       *time.Time `json:"start_time"`
	CreatedAt       time.Time  `json:"created_at"`
}

type BookingViewResponse struct {
	BookingResponse
	LawyerName string `json:"lawyer_name"`
	LawyerCity string `json:"lawyer_city"`
}

func ToBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		LawyerID:        b.LawyerID,
		DurationMinutes: b.DurationMinutes,
		BaseAmount:      b.BaseAmount,
		PlatformFee:     b.PlatformFee,
		TotalAmount:     b.TotalAmount,
		Currency:        b.Currency,
		Status:          string(b.Status),
		StartTime:       b.StartTime,
		CreatedAt:       b.CreatedAt,
	}
}

func ToBookingResponses(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ToBookingResponse(b))
	}
	return out
}

func ToBookingViewResponses(views []*entity.BookingView) []BookingViewResponse {
	out := make([]BookingViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, BookingViewResponse{
			BookingResponse: ToBookingResponse(&v.Booking),
			LawyerName:      v.LawyerName,
			LawyerCity:      v.LawyerCity,
		})
	}
	return out
}

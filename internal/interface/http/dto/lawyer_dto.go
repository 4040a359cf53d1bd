package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/domain/valueobject"
	"github.com/cyberlawyerhub/backend/internal/usecase/lawyer"
)

type RegisterLawyerRequest struct {
	FullName        string   `json:"full_name" binding:"required"`
	Phone           string   `json:"phone"`
	BarCouncilID    string   `json:"bar_council_id" binding:"required"`
	City            string   `json:"city" binding:"required"`
	HourlyRate      int64    `json:"hourly_rate"`
	Specializations []string `json:"specializations"`
	Bio             string   `json:"bio"`
	ExperienceYears *int     `json:"experience_years"`
}

func (r RegisterLawyerRequest) ToInput() lawyer.RegisterLawyerInput {
	return lawyer.RegisterLawyerInput{
		FullName:        r.FullName,
		Phone:           r.Phone,
		BarCouncilID:    r.BarCouncilID,
		City:            r.City,
		HourlyRate:      r.HourlyRate,
		Specializations: r.Specializations,
		Bio:             r.Bio,
		ExperienceYears: r.ExperienceYears,
	}
}

type LawyerResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	PhotoURL        *string   `json:"photo_url"`
	Bio             *string   `json:"bio"`
	ExperienceYears *int      `json:"experience_years"`
	HourlyRate      int64     `json:"hourly_rate"`
	City            string    `json:"city"`
	Specializations []string  `json:"specializations"`
	IsVerified      bool      `json:"is_verified"`
	Rating          *float64  `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type PriceDTO struct {
	BaseAmount  int64  `json:"base_amount"`
	PlatformFee int64  `json:"platform_fee"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

type LawyerDetailsResponse struct {
	LawyerResponse
	Prices map[string]PriceDTO `json:"prices"`
}


func ToLawyerResponse(l *entity.Lawyer) LawyerResponse {
	specs := l.Specializations
	if specs == nil {
		specs = []string{}
	}
	return LawyerResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		FullName:        l.DisplayName(),
		PhotoURL:        l.Photo(),
		Bio:             l.Bio,
		ExperienceYears: l.ExperienceYears,
		HourlyRate:      l.HourlyRate,
		City:            l.City,
		Specializations: specs,
		IsVerified:      l.IsVerified,
		Rating:          l.Rating,
		ReviewCount:     l.ReviewCount,
		CreatedAt:       l.CreatedAt,
	}
}

func ToLawyerResponses(lawyers []*entity.Lawyer) []LawyerResponse {
	out := make([]LawyerResponse, 0, len(lawyers))
	for _, l := range lawyers {
		out = append(out, ToLawyerResponse(l))
	}
	return out
}

func ToPriceDTO(p valueobject.Price) PriceDTO {
	return PriceDTO{
		BaseAmount:  p.BaseAmount,
		PlatformFee: p.PlatformFee,
		TotalAmount: p.TotalAmount,
		Currency:    p.Currency,
	}
}

func ToLawyerDetailsResponse(d *lawyer.LawyerDetails) LawyerDetailsResponse {
	return LawyerDetailsResponse{
		LawyerResponse: ToLawyerResponse(d.Lawyer),
		Prices: map[string]PriceDTO{
			"30": ToPriceDTO(d.HalfHour),
			"60": ToPriceDTO(d.FullHour),
		},
	}
}

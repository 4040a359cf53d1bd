package dto

import (
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/usecase/availability"
)

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r CreateSlotRequest) ToInput() availability.CreateSlotInput {
	return availability.CreateSlotInput{Date: r.Date, StartTime: r.StartTime, EndTime: r.EndTime}
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	LawyerID  uuid.UUID `json:"lawyer_id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
}

func ToSlotResponse(s *entity.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		LawyerID:  s.LawyerID,
		Date:      s.Date.Format(entity.DateLayout),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsBooked:  s.IsBooked,
	}
}

func ToSlotResponses(slots []*entity.AvailabilitySlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, ToSlotResponse(s))
	}
	return out
}

package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/usecase/availability"
)

type slotCreator interface {
	Execute(ctx context.Context, input availability.CreateSlotInput) (*entity.AvailabilitySlot, error)
}

type slotDeleter interface {
	Execute(ctx context.Context, slotID uuid.UUID) error
}

// AvailabilityHandler управляет слотами текущего юриста.
type AvailabilityHandler struct {
	createUC slotCreator
	deleteUC slotDeleter
}

func NewAvailabilityHandler(createUC slotCreator, deleteUC slotDeleter) *AvailabilityHandler {
	return &AvailabilityHandler{createUC: createUC, deleteUC: deleteUC}
}

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "укажите date, start_time и end_time")
		return
	}

	slot, err := h.createUC.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, dto.ToSlotResponse(slot))
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	slotID, err := parseUUIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), slotID); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyberlawyerhub/backend/internal/domain/entity"
	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/usecase/lawyer"
)

type lawyerSearcher interface {
	Execute(ctx context.Context, filter lawyer.Filter) ([]*entity.Lawyer, error)
}

type lawyerGetter interface {
	Execute(ctx context.Context, id uuid.UUID) (*lawyer.LawyerDetails, error)
}

type lawyerRegistrar interface {
	Execute(ctx context.Context, input lawyer.RegisterLawyerInput) (*entity.Lawyer, error)
}

type slotLister interface {
	Execute(ctx context.Context, lawyerID uuid.UUID) ([]*entity.AvailabilitySlot, error)
}

type LawyerHandler struct {
	searchUC   lawyerSearcher
	getUC      lawyerGetter
	registerUC lawyerRegistrar
	slotsUC    slotLister
}

func NewLawyerHandler(searchUC lawyerSearcher, getUC lawyerGetter, registerUC lawyerRegistrar, slotsUC slotLister) *LawyerHandler {
	return &LawyerHandler{
		searchUC:   searchUC,
		getUC:      getUC,
		registerUC: registerUC,
		slotsUC:    slotsUC,
	}
}

// List обрабатывает GET /api/lawyers?search=&city=&min_rate=&max_rate=&min_rating=.
func (h *LawyerHandler) List(c *gin.Context) {
	filter, err := directoryFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	lawyers, err := h.searchUC.Execute(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToLawyerResponses(lawyers))
}

// Get обрабатывает GET /api/lawyers/:id.
func (h *LawyerHandler) Get(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	details, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToLawyerDetailsResponse(details))
}

// Availability обрабатывает GET /api/lawyers/:id/availability.
func (h *LawyerHandler) Availability(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToSlotResponses(slots))
}

// Register обрабатывает POST /api/lawyers.
func (h *LawyerHandler) Register(c *gin.Context) {
	var req dto.RegisterLawyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "некорректные данные запроса")
		return
	}

	l, err := h.registerUC.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, dto.ToLawyerResponse(l))
}

func directoryFilter(c *gin.Context) (lawyer.Filter, error) {
	filter := lawyer.Filter{
		Search: strings.TrimSpace(c.Query("search")),
		City:   strings.TrimSpace(c.Query("city")),
	}

	var err error
	if filter.MinRate, err = parseInt64Query(c, "min_rate"); err != nil {
		return filter, err
	}
	if filter.MaxRate, err = parseInt64Query(c, "max_rate"); err != nil {
		return filter, err
	}
	if filter.MinRating, err = parseFloatQuery(c, "min_rating"); err != nil {
		return filter, err
	}
	return filter, nil
}

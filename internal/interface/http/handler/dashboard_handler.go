package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/usecase/dashboard"
)

type userDashboardGetter interface {
	Execute(ctx context.Context) (*dashboard.UserDashboard, error)
}

type lawyerDashboardGetter interface {
	Execute(ctx context.Context) (*dashboard.LawyerDashboard, error)
}

type DashboardHandler struct {
	userUC   userDashboardGetter
	lawyerUC lawyerDashboardGetter
}

func NewDashboardHandler(userUC userDashboardGetter, lawyerUC lawyerDashboardGetter) *DashboardHandler {
	return &DashboardHandler{userUC: userUC, lawyerUC: lawyerUC}
}

func (h *DashboardHandler) User(c *gin.Context) {
	d, err := h.userUC.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToUserDashboardResponse(d))
}

func (h *DashboardHandler) Lawyer(c *gin.Context) {
	d, err := h.lawyerUC.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, dto.ToLawyerDashboardResponse(d))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cyberlawyerhub/backend/internal/fir"
	"github.com/cyberlawyerhub/backend/internal/interface/http/dto"
	"github.com/cyberlawyerhub/backend/internal/interface/http/response"
	"github.com/cyberlawyerhub/backend/internal/pkg/apperror"
)

type reportGenerator interface {
	Generate(r fir.Report) (*fir.Document, error)
}

// FIRHandler отдаёт справочники формы и собирает PDF жалобы.
// Данные формы не сохраняются.
type FIRHandler struct {
	generator reportGenerator
	log       *logrus.Entry
}

func NewFIRHandler(generator reportGenerator, log *logrus.Entry) *FIRHandler {
	return &FIRHandler{generator: generator, log: log}
}

func (h *FIRHandler) Options(c *gin.Context) {
	response.Success(c, dto.NewFIROptionsResponse())
}

func (h *FIRHandler) Report(c *gin.Context) {
	var req dto.FIRReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.New(apperror.ErrCodeValidation, "invalid request body: amount is required"))
		return
	}

	doc, err := h.generator.Generate(req.ToReport())
	if err != nil {
		if !apperror.IsValidation(err) {
			h.log.WithError(err).Error("fir report generation failed")
		}
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fir.FileName+`"`)
	c.Header("X-Report-Severity", string(doc.Severity.Level))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

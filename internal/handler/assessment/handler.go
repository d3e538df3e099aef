package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/htncare/assessment-api/internal/handler"
	"github.com/htncare/assessment-api/internal/middleware"
	"github.com/htncare/assessment-api/internal/model"
	"github.com/htncare/assessment-api/internal/service/assessment"
)

type Handler struct {
	service assessment.AssessmentService
}

func NewHandler(service assessment.AssessmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	assessments := r.Group("/assessments")
	{
		assessments.POST("", h.GenerateAssessment)
		assessments.GET("/current", h.GetCurrent)
		assessments.GET("/current/recommendations", h.GetRecommendations)
		assessments.GET("/current/treatment-plan", h.GetTreatmentPlan)
		assessments.GET("/current/report", h.ExportReport)
		assessments.DELETE("/current", h.DiscardCurrent)
	}
}

// GenerateAssessment commits a new assessment for the session,
// replacing whatever was there before.
func (h *Handler) GenerateAssessment(c *gin.Context) {
	var req model.AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	a, err := h.service.GenerateAssessment(c.Request.Context(), middleware.SessionID(c), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(a))
}

func (h *Handler) GetCurrent(c *gin.Context) {
	a, err := h.service.CurrentAssessment(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(a))
}

func (h *Handler) GetRecommendations(c *gin.Context) {
	recs, err := h.service.Recommendations(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(recs))
}

func (h *Handler) GetTreatmentPlan(c *gin.Context) {
	plan, err := h.service.TreatmentPlan(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(plan))
}

// ExportReport returns the current assessment as a downloadable JSON
// document.
func (h *Handler) ExportReport(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assessment-report.json"`)
	c.JSON(http.StatusOK, report)
}

func (h *Handler) DiscardCurrent(c *gin.Context) {
	if err := h.service.Discard(c.Request.Context(), middleware.SessionID(c)); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "assessment discarded"})
}

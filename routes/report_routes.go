package routes

import (
	"net/http"
	"strconv"

	"luct-reporting-backend/app/repository"
	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler melayani laporan mingguan, feedback prl, dan monitoring.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler membuat instance handler baru.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SetupReportRoutes mendaftarkan endpoint laporan terproteksi.
func (h *ReportHandler) SetupReportRoutes(r *gin.Engine) {
	g := r.Group("/")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/reports", h.List)
		g.POST("/reports", h.Submit)
		g.PUT("/reports/:id/feedback", h.AttachFeedback)
		g.GET("/monitoring", h.Monitoring)
	}
}

// Submit menerima laporan mingguan dari lecturer.
func (h *ReportHandler) Submit(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var input struct {
		ClassID          string `json:"class_id" binding:"required"`
		Week             int    `json:"week" binding:"required"`
		Date             string `json:"date" binding:"required"`
		Topic            string `json:"topic" binding:"required"`
		LearningOutcomes string `json:"learning_outcomes"`
		PresentStudents  int    `json:"present_students"`
		TotalStudents    int    `json:"total_students"`
		Venue            string `json:"venue"`
		ScheduledTime    string `json:"scheduled_time"`
		Recommendations  string `json:"recommendations"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid report input", err.Error(), nil))
		return
	}

	classID, err := uuid.Parse(input.ClassID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid class_id (must be UUID)", err.Error(), nil))
		return
	}

	err = h.reportService.Submit(ident, service.ReportInput{
		ClassID:          classID,
		Week:             input.Week,
		Date:             input.Date,
		Topic:            input.Topic,
		LearningOutcomes: input.LearningOutcomes,
		PresentStudents:  input.PresentStudents,
		TotalStudents:    input.TotalStudents,
		Venue:            input.Venue,
		ScheduledTime:    input.ScheduledTime,
		Recommendations:  input.Recommendations,
	})
	if err != nil {
		respondError(ctx, "Error submitting report", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Report submitted", nil))
}

// List mengembalikan laporan sesuai scope + filter opsional
// (?search, ?week, ?course).
func (h *ReportHandler) List(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	filter := repository.ReportFilter{
		Search: ctx.Query("search"),
	}

	if raw := ctx.Query("week"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Invalid week filter (must be a number)", err.Error(), nil))
			return
		}
		filter.Week = &week
	}

	if raw := ctx.Query("course"); raw != "" {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Invalid course filter (must be UUID)", err.Error(), nil))
			return
		}
		filter.CourseID = &courseID
	}

	rows, err := h.reportService.List(ident, filter)
	if err != nil {
		respondError(ctx, "Error fetching reports", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Reports fetched", rows))
}

// AttachFeedback menempelkan feedback prl ke laporan; status menjadi
// reviewed dengan sendirinya.
func (h *ReportHandler) AttachFeedback(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid report id (must be UUID)", err.Error(), nil))
		return
	}

	var input struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid feedback input", err.Error(), nil))
		return
	}

	if err := h.reportService.AttachFeedback(ident, reportID, input.Feedback); err != nil {
		respondError(ctx, "Error adding feedback", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Feedback added", nil))
}

// Monitoring mengembalikan {avg_attendance, report_count} dengan scope
// yang sama dengan GET /reports.
func (h *ReportHandler) Monitoring(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	stats, err := h.reportService.Monitoring(ident)
	if err != nil {
		respondError(ctx, "Error fetching monitoring data", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Monitoring data fetched", stats))
}

package routes

import (
	"net/http"

	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClassHandler melayani assignment lecturer dan pembacaan kelas.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler membuat instance handler baru.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// SetupClassRoutes mendaftarkan endpoint kelas terproteksi.
// Path POST mengikuti kontrak frontend: /assign-lecturer.
func (h *ClassHandler) SetupClassRoutes(r *gin.Engine) {
	g := r.Group("/")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/classes", h.List)
		g.POST("/assign-lecturer", h.Assign)
	}
}

// List mengembalikan kelas (dengan nama course dan lecturer) sesuai scope.
func (h *ClassHandler) List(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	rows, err := h.classService.List(ident)
	if err != nil {
		respondError(ctx, "Error fetching classes", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Classes fetched", rows))
}

// Assign membuat assignment kelas baru (pl saja). ID dikirim sebagai string
// dan dikonversi ke UUID di sini.
func (h *ClassHandler) Assign(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var input struct {
		CourseID      string `json:"course_id" binding:"required"`
		LecturerID    string `json:"lecturer_id" binding:"required"`
		Venue         string `json:"venue" binding:"required"`
		ScheduledTime string `json:"scheduled_time" binding:"required"`
		TotalStudents int    `json:"total_students" binding:"required"`
		Stream        string `json:"stream" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid assignment input", err.Error(), nil))
		return
	}

	courseID, err := uuid.Parse(input.CourseID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid course_id (must be UUID)", err.Error(), nil))
		return
	}
	lecturerID, err := uuid.Parse(input.LecturerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid lecturer_id (must be UUID)", err.Error(), nil))
		return
	}

	err = h.classService.Assign(ident, service.AssignInput{
		CourseID:      courseID,
		LecturerID:    lecturerID,
		Venue:         input.Venue,
		ScheduledTime: input.ScheduledTime,
		TotalStudents: input.TotalStudents,
		Stream:        input.Stream,
	})
	if err != nil {
		respondError(ctx, "Error assigning", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Assigned", nil))
}

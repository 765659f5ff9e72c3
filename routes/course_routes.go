package routes

import (
	"net/http"

	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
)

// CourseHandler melayani pembuatan dan pembacaan course.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler membuat instance handler baru.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// SetupCourseRoutes mendaftarkan endpoint course terproteksi.
func (h *CourseHandler) SetupCourseRoutes(r *gin.Engine) {
	g := r.Group("/courses")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("", h.List)
		g.POST("", h.Create)
	}
}

// List mengembalikan course sesuai scope role pemanggil.
func (h *CourseHandler) List(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	courses, err := h.courseService.List(ident)
	if err != nil {
		respondError(ctx, "Error fetching courses", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Courses fetched", courses))
}

// Create menambahkan course baru (pl saja).
func (h *CourseHandler) Create(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required"`
		Code        string `json:"code" binding:"required"`
		Stream      string `json:"stream" binding:"required"`
		Description string `json:"description"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid course input", err.Error(), nil))
		return
	}

	err := h.courseService.Create(ident, service.CourseInput{
		Name:        input.Name,
		Code:        input.Code,
		Stream:      input.Stream,
		Description: input.Description,
	})
	if err != nil {
		respondError(ctx, "Error adding course", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Course added", nil))
}

package routes

import (
	"net/http"

	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler melayani profil akun dan daftar lecturer.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler membuat instance handler baru.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SetupUserRoutes mendaftarkan endpoint user terproteksi.
func (h *UserHandler) SetupUserRoutes(r *gin.Engine) {
	g := r.Group("/")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/profile", h.Profile)
		g.GET("/users/lecturers", h.Lecturers)
	}
}

// Profile mengembalikan {id, username, role, stream} milik pemanggil.
func (h *UserHandler) Profile(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	user, err := h.userService.Profile(ident.UserID)
	if err != nil {
		respondError(ctx, "Error fetching profile", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Profile fetched", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"stream":   user.Stream,
	}))
}

// Lecturers mengembalikan daftar {id, username} semua lecturer (pl saja),
// untuk dropdown assignment.
func (h *UserHandler) Lecturers(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	rows, err := h.userService.ListLecturers(ident)
	if err != nil {
		respondError(ctx, "Error fetching lecturers", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Lecturers fetched", rows))
}

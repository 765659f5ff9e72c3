package routes

import (
	"net/http"

	"luct-reporting-backend/app/service"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler adalah struct pengelola request untuk register dan login.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler membuat instance handler baru; disambungkan di main.go.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SetupAuthRoutes mendaftarkan endpoint publik autentikasi.
func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
}

// Register menangani pendaftaran akun baru.
// Role boleh dikirim dengan casing apa pun ("Lecturer", "PRL"); service yang
// menormalkannya. Stream opsional kecuali untuk lecturer/prl.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var input struct {
		Username string  `json:"username" binding:"required"`
		Password string  `json:"password" binding:"required"`
		Role     string  `json:"role" binding:"required"`
		Stream   *string `json:"stream"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid registration input", err.Error(), nil))
		return
	}

	err := h.authService.Register(service.RegisterInput{
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
		Stream:   input.Stream,
	})
	if err != nil {
		respondError(ctx, "Error registering", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Registered", nil))
}

// Login menangani proses masuk dan pembuatan token JWT.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid login input", err.Error(), nil))
		return
	}

	user, err := h.authService.Login(input.Username, input.Password)
	if err != nil {
		respondError(ctx, "Login failed", err)
		return
	}

	stream := ""
	if user.Stream != nil {
		stream = *user.Stream
	}

	token, err := utils.GenerateToken(user.ID, user.Role, stream)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed("Error generating token", err.Error(), nil))
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Login successful", gin.H{
		"token": token,
		"role":  user.Role,
	}))
}

package routes

import (
	"net/http"

	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RatingHandler melayani submit dan pembacaan rating.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler membuat instance handler baru.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// SetupRatingRoutes mendaftarkan endpoint rating terproteksi.
func (h *RatingHandler) SetupRatingRoutes(r *gin.Engine) {
	g := r.Group("/ratings")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("", h.List)
		g.POST("", h.Submit)
	}
}

// Submit menerima rating baru. RateeID nullable: null untuk rating fasilitas.
func (h *RatingHandler) Submit(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	var input struct {
		RateeID *string `json:"ratee_id"`
		Rating  int     `json:"rating" binding:"required"`
		Comment string  `json:"comment"`
		Type    string  `json:"type" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid rating input", err.Error(), nil))
		return
	}

	var rateeID *uuid.UUID
	if input.RateeID != nil && *input.RateeID != "" {
		parsed, err := uuid.Parse(*input.RateeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				utils.BuildResponseFailed("Invalid ratee_id (must be UUID)", err.Error(), nil))
			return
		}
		rateeID = &parsed
	}

	err := h.ratingService.Submit(ident, service.RatingInput{
		RateeID: rateeID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Type:    input.Type,
	})
	if err != nil {
		respondError(ctx, "Error submitting rating", err)
		return
	}

	ctx.JSON(http.StatusCreated, utils.BuildResponseSuccess("Rating submitted", nil))
}

// List mengembalikan rating sesuai scope role pemanggil.
func (h *RatingHandler) List(ctx *gin.Context) {
	ident, ok := mustIdentity(ctx)
	if !ok {
		return
	}

	ratings, err := h.ratingService.List(ident)
	if err != nil {
		respondError(ctx, "Error fetching ratings", err)
		return
	}

	ctx.JSON(http.StatusOK, utils.BuildResponseSuccess("Ratings fetched", ratings))
}

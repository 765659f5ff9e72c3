package routes

import (
	"errors"
	"net/http"

	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/app/service"
	"luct-reporting-backend/middleware"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError memetakan taksonomi error service/policy ke status HTTP:
// - policy.ErrForbidden           → 403
// - service.ValidationError       → 400
// - service.ErrInvalidCredentials → 400
// - sisanya (StorageError dkk)    → 500, pesan upstream ikut ditampilkan
func respondError(ctx *gin.Context, message string, err error) {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, policy.ErrForbidden):
		ctx.JSON(http.StatusForbidden,
			utils.BuildResponseFailed("Forbidden", err.Error(), nil))
	case errors.As(err, &vErr):
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed(message, vErr.Reason, nil))
	case errors.Is(err, service.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid credentials", err.Error(), nil))
	default:
		ctx.JSON(http.StatusInternalServerError,
			utils.BuildResponseFailed(message, err.Error(), nil))
	}
}

// mustIdentity mengambil identity hasil AuthMiddleware; kalau tidak ada
// (route terproteksi tanpa middleware — bug wiring), balas 401 dan false.
func mustIdentity(ctx *gin.Context) (policy.Identity, bool) {
	ident, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized,
			utils.BuildResponseFailed("Authorization token required", "no_identity_in_context", nil))
		return policy.Identity{}, false
	}
	return ident, true
}

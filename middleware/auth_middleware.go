package middleware

import (
	"net/http"
	"strings"

	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys yang di-set oleh AuthMiddleware.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextStream = "stream"
)

// AuthMiddleware adalah Identity Verifier portal: memvalidasi JWT dari header
// Authorization (Bearer token) lalu menyimpan identity {userID, role, stream}
// ke dalam context. Handler hilir memakai identity ini sebagai ground truth
// tanpa membaca ulang role/stream dari storage.
//
// Kredensial absen  → 401 (Unauthenticated)
// Kredensial rusak/kedaluwarsa/role tak dikenal → 403 (InvalidCredential)
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "missing_or_invalid_authorization_header", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized,
				utils.BuildResponseFailed("Authorization token required", "empty_token", nil))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		// Role di token dinormalkan lagi di boundary ini; token lama dengan
		// casing campur tetap diterima, token dengan role asing ditolak.
		role, err := policy.ParseRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusForbidden,
				utils.BuildResponseFailed("Invalid or expired token", err.Error(), nil))
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, role)
		c.Set(ContextStream, claims.Stream)

		c.Next()
	}
}

// CurrentIdentity mengambil identity hasil AuthMiddleware dari context.
// Mengembalikan false bila middleware belum berjalan di route tersebut.
func CurrentIdentity(c *gin.Context) (policy.Identity, bool) {
	userIDVal, ok := c.Get(ContextUserID)
	if !ok {
		return policy.Identity{}, false
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return policy.Identity{}, false
	}

	roleVal, ok := c.Get(ContextRole)
	if !ok {
		return policy.Identity{}, false
	}
	role, ok := roleVal.(policy.Role)
	if !ok {
		return policy.Identity{}, false
	}

	return policy.Identity{
		UserID: userID,
		Role:   role,
		Stream: c.GetString(ContextStream),
	}, true
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"luct-reporting-backend/app/policy"
	"luct-reporting-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() (*gin.Engine, *policy.Identity) {
	gin.SetMode(gin.TestMode)

	var captured policy.Identity
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = ident
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, _ := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bukan-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r, captured := testRouter()

	userID := uuid.New()
	token, err := utils.GenerateToken(userID, "lecturer", "Information Technology")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, policy.RoleLecturer, captured.Role)
	assert.Equal(t, "Information Technology", captured.Stream)
}

// Token lama yang menyimpan role dengan casing campur tetap diterima dan
// dinormalkan; token dengan role asing ditolak.
func TestAuthMiddleware_RoleNormalization(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r, captured := testRouter()

	token, err := utils.GenerateToken(uuid.New(), "LECTURER", "Information Technology")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, policy.RoleLecturer, captured.Role)

	badToken, err := utils.GenerateToken(uuid.New(), "superuser", "")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+badToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

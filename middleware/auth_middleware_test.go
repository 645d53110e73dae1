package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/taskdeck/utils/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupRouter(tokens *token.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID.String()})
	})
	return router
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	tokens := token.NewManager("access", "refresh", time.Minute, time.Hour)
	router := setupRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := token.NewManager("access", "refresh", time.Minute, time.Hour)
	router := setupRouter(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokens := token.NewManager("access", "refresh", time.Minute, time.Hour)
	router := setupRouter(tokens)

	refreshToken, err := tokens.GenerateRefreshToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: refreshToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewManager("access", "refresh", time.Minute, time.Hour)
	router := setupRouter(tokens)

	userID := uuid.New()
	accessToken, err := tokens.GenerateAccessToken(userID, "ana@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: accessToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/taskdeck/config"
	"taskdeck/taskdeck/domain"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type MockAuthService struct {
	existingEmail string
}

func (m *MockAuthService) user(email string) domain.User {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return domain.UserFromPrimitives(testUserID, "Ana García", email, "hash", created, created)
}

func (m *MockAuthService) Register(input services.RegisterInput) (domain.User, services.TokenPair, error) {
	if err := domain.ValidatePassword(input.Password); err != nil {
		return domain.User{}, services.TokenPair{}, err
	}
	if input.Email == m.existingEmail {
		return domain.User{}, services.TokenPair{}, domain.ErrUserAlreadyExists
	}
	return m.user(input.Email), services.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

func (m *MockAuthService) Login(input services.LoginInput) (domain.User, services.TokenPair, error) {
	if input.Password != "Password1!" {
		return domain.User{}, services.TokenPair{}, services.ErrInvalidCredentials
	}
	return m.user(input.Email), services.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

func (m *MockAuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", services.ErrRefreshTokenNotFound
	}
	if refreshToken != "refresh-token" {
		return "", services.ErrInvalidToken
	}
	return "new-access", nil
}

type MockUserService struct{}

func (m *MockUserService) GetByID(id uuid.UUID) (domain.User, error) {
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return domain.UserFromPrimitives(id, "Ana García", "ana@example.com", "hash", created, created), nil
}

func (m *MockUserService) Update(id uuid.UUID, input services.UpdateUserInput) (domain.User, error) {
	return m.GetByID(id)
}

func setupAuthRouter(authService services.AuthServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := config.Config{
		AppEnv:                  "development",
		CookieAccessExpiration:  900,
		CookieRefreshExpiration: 604800,
	}
	authenticated := router.Group("/api")
	authenticated.Use(testAuth)
	RegisterAuthRoutes(router, cfg, authService, &MockUserService{}, authenticated)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	response := http.Response{Header: w.Header()}
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegister_Created(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/register", `{"name":"Ana García","email":"ana@example.com","password":"Password1!"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
	// Registration logs the user straight in.
	access := cookieByName(w, middleware.AccessTokenCookie)
	assert.NotNil(t, access)
	assert.Equal(t, "access-token", access.Value)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{existingEmail: "ana@example.com"})

	w := postJSON(router, "/api/auth/register", `{"name":"Ana García","email":"ana@example.com","password":"Password1!"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestRegister_InvalidBody(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/register", `{"name":"Ana García"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
	assert.Contains(t, w.Body.String(), "body.email")
	assert.Contains(t, w.Body.String(), "body.password")
}

func TestLogin_SetsCookies(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/login", `{"email":"ana@example.com","password":"Password1!"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	access := cookieByName(w, middleware.AccessTokenCookie)
	assert.NotNil(t, access)
	assert.Equal(t, "access-token", access.Value)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, "/", access.Path)

	refresh := cookieByName(w, RefreshTokenCookie)
	assert.NotNil(t, refresh)
	assert.Equal(t, "refresh-token", refresh.Value)
	assert.True(t, refresh.HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/login", `{"email":"ana@example.com","password":"Wrong1!pw"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRefresh_MissingCookie(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/refresh", ``)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Refresh token not found")
}

func TestRefresh_InvalidCookie(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "stale"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid refresh token")
}

func TestRefresh_ReissuesAccessCookieOnly(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "refresh-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token refreshed successfully")

	access := cookieByName(w, middleware.AccessTokenCookie)
	assert.NotNil(t, access)
	assert.Equal(t, "new-access", access.Value)

	// The refresh cookie is left untouched.
	assert.Nil(t, cookieByName(w, RefreshTokenCookie))
}

func TestLogout_ClearsCookies(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := postJSON(router, "/api/auth/logout", ``)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")

	access := cookieByName(w, middleware.AccessTokenCookie)
	assert.NotNil(t, access)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)
}

func TestProfile(t *testing.T) {
	router := setupAuthRouter(&MockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

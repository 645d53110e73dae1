package routes

import (
	"net/http"

	"taskdeck/taskdeck/config"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/models"
	"taskdeck/taskdeck/services"

	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie is the cookie carrying the long-lived refresh token.
// It is only sent to the refresh endpoint in production.
const RefreshTokenCookie = "refreshToken"

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAuthRoutes wires the public auth endpoints on the engine and the
// profile endpoint on the authenticated group.
func RegisterAuthRoutes(router *gin.Engine, cfg config.Config, authService services.AuthServiceInterface, userService services.UserServiceInterface, authenticated *gin.RouterGroup) {
	group := router.Group("/api/auth")
	{
		group.POST("/register", func(c *gin.Context) { Register(c, cfg, authService) })
		group.POST("/login", func(c *gin.Context) { Login(c, cfg, authService) })
		group.POST("/refresh", func(c *gin.Context) { Refresh(c, cfg, authService) })
		group.POST("/logout", func(c *gin.Context) { Logout(c, cfg) })
	}

	authenticated.GET("/auth/profile", func(c *gin.Context) { Profile(c, userService) })
}

func Register(c *gin.Context, cfg config.Config, authService services.AuthServiceInterface) {
	var request registerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	user, pair, err := authService.Register(services.RegisterInput{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	setTokenCookies(c, cfg, pair)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    models.NewUserResponse(user),
	})
}

func Login(c *gin.Context, cfg config.Config, authService services.AuthServiceInterface) {
	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		bindingError(c, err)
		return
	}

	user, pair, err := authService.Login(services.LoginInput{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	setTokenCookies(c, cfg, pair)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    models.NewUserResponse(user),
	})
}

// Refresh re-issues the access cookie from a valid refresh cookie.
func Refresh(c *gin.Context, cfg config.Config, authService services.AuthServiceInterface) {
	refreshToken, _ := c.Cookie(RefreshTokenCookie)

	accessToken, err := authService.Refresh(refreshToken)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	setAccessCookie(c, cfg, accessToken)
	c.JSON(http.StatusOK, gin.H{"message": "Token refreshed successfully"})
}

func Logout(c *gin.Context, cfg config.Config) {
	clearTokenCookies(c, cfg)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func Profile(c *gin.Context, userService services.UserServiceInterface) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required: No token provided."})
		return
	}

	user, err := userService.GetByID(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// Cookie scoping differs by environment: production narrows paths so the
// refresh token is only ever sent to the refresh endpoint, and requires
// HTTPS with cross-site delivery for a separately hosted frontend.
func accessCookiePath(cfg config.Config) string {
	if cfg.IsProduction() {
		return "/api"
	}
	return "/"
}

func refreshCookiePath(cfg config.Config) string {
	if cfg.IsProduction() {
		return "/api/auth/refresh"
	}
	return "/"
}

func setSameSite(c *gin.Context, cfg config.Config) bool {
	secure := cfg.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	return secure
}

func setAccessCookie(c *gin.Context, cfg config.Config, accessToken string) {
	secure := setSameSite(c, cfg)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, cfg.CookieAccessExpiration, accessCookiePath(cfg), "", secure, true)
}

func setTokenCookies(c *gin.Context, cfg config.Config, pair services.TokenPair) {
	secure := setSameSite(c, cfg)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, cfg.CookieAccessExpiration, accessCookiePath(cfg), "", secure, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, cfg.CookieRefreshExpiration, refreshCookiePath(cfg), "", secure, true)
}

func clearTokenCookies(c *gin.Context, cfg config.Config) {
	secure := setSameSite(c, cfg)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, accessCookiePath(cfg), "", secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, refreshCookiePath(cfg), "", secure, true)
}

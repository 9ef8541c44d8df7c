package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"solemate-service/internal/middleware"
	"solemate-service/internal/models"
)

const sessionTTL = 24 * time.Hour

type AuthHandler struct {
	adminUsername string
	adminPassword string
	sessionSecret string
	secureCookies bool
}

func NewAuthHandler(adminUsername, adminPassword, sessionSecret string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		sessionSecret: sessionSecret,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the configured credentials and sets a signed session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	if h.adminPassword == "" {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "CONFIG_ERROR",
				Message: "Admin credentials are not configured",
			},
		})
		return
	}

	if req.Username != h.adminUsername || req.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_CREDENTIALS",
				Message: "Invalid username or password",
			},
		})
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(h.sessionSecret))
	if err != nil {
		internalError(c, err)
		return
	}

	c.SetCookie(middleware.AdminSessionCookie, signed, int(sessionTTL.Seconds()), "/", "", h.secureCookies, true)
	msg := "Login successful"
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: &msg})
}

// Logout expires the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminSessionCookie, "", -1, "/", "", h.secureCookies, true)
	msg := "Logout successful"
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: &msg})
}

// CheckSession reports whether the session is active. It sits behind the
// auth middleware, so reaching it means the token was valid.
func (h *AuthHandler) CheckSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"message":       "Session is active.",
	})
}

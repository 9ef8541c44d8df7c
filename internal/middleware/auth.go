package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"solemate-service/internal/models"
)

// AdminSessionCookie is the cookie carrying the signed admin session token
const AdminSessionCookie = "admin_session"

// AdminAuthMiddleware validates the admin session cookie. Requests with a
// missing, malformed or expired token are rejected with 401.
func AdminAuthMiddleware(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AdminSessionCookie)
		if err != nil || tokenString == "" {
			unauthorized(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(sessionSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c)
			return
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Set("admin_user", sub)
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "UNAUTHORIZED",
			Message: "Authentication required. Invalid or missing session.",
		},
	})
	c.Abort()
}

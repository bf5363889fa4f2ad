package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxUserID = "auth_user_id"
	ctxEmail  = "auth_email"
	ctxRole   = "auth_role"
)

// Claims carried in access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Bearer token and, when roles are given,
// enforces that the caller holds one of them. User identity lands in
// the context for downstream handlers.
func RequireAuth(secret []byte, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing or invalid authorization header",
				"error":   gin.H{"code": "UNAUTHORIZED"},
			})
			return
		}

		tokenString := strings.TrimPrefix(auth, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "invalid or expired token",
				"error":   gin.H{"code": "FORBIDDEN"},
			})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": "insufficient permissions",
					"error":   gin.H{"code": "FORBIDDEN"},
				})
				return
			}
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// AuthUserID returns the authenticated user's ID, empty when the route
// is unauthenticated.
func AuthUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// AuthRole returns the authenticated user's role.
func AuthRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

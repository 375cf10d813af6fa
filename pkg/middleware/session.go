package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

// SessionCookie is the cookie carrying the signed session token. The
// same token is also accepted as a Bearer header.
const SessionCookie = "cfms_session"

const (
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// SessionMiddleware authenticates the request and stores the caller's
// email and role in the gin context. Requests without a valid session
// are rejected before reaching any handler.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Missing session")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
			c.Abort()
			return
		}

		role := db_models.Role(claims.Role)
		if !role.Valid() {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid session role")
			c.Abort()
			return
		}

		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// SessionMiddleware.
func RequireRole(roles ...db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := SessionRole(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Missing session")
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}

func SessionEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(CtxUserEmail)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

func SessionRole(c *gin.Context) (db_models.Role, bool) {
	v, ok := c.Get(CtxUserRole)
	if !ok {
		return "", false
	}
	role, ok := v.(db_models.Role)
	return role, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	mem "bookstore/pkg/memcache"
	"bookstore/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID      = "user_id"
	ContextEmail       = "email"
	ContextRole        = "role"
	ContextTokenID     = "token_id"
	ContextTokenExpiry = "token_expiry"
)

func JWTAuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {

	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not logged in")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextUserID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExpiry, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// RoleMiddleware must be chained after JWTAuthMiddleware. Tokens revoked
// through logout are refused here, so the denylist only guards privileged
// routes.
func RoleMiddleware(requiredRole utils.Role, revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Not logged in")
			return
		}

		if revoked != nil && revoked.IsRevoked(c.GetString(ContextTokenID)) {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if identity.Role != requiredRole {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

func IdentityFromContext(c *gin.Context) (utils.Identity, bool) {
	role, ok := c.Get(ContextRole)
	if !ok {
		return utils.Identity{}, false
	}
	r, ok := role.(utils.Role)
	if !ok {
		return utils.Identity{}, false
	}

	return utils.Identity{
		ID:    c.GetUint(ContextUserID),
		Email: c.GetString(ContextEmail),
		Role:  r,
	}, true
}

func TokenFromContext(c *gin.Context) (string, time.Time) {
	return c.GetString(ContextTokenID), c.GetTime(ContextTokenExpiry)
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

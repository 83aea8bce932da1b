package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guillenLawn/bodega-backend/auth"
	"github.com/guillenLawn/bodega-backend/models"
)

const claimsKey = "claims"

// RequireAuth verifies the Authorization bearer token and attaches the
// decoded claims to the context for downstream handlers.
func RequireAuth(tokens *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrTokenFaltante.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "formato inválido, debe ser 'Bearer <token>'"})
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrTokenFaltante.Error()})
			return
		}
		switch claims.Rol {
		case models.RolAdmin:
			c.Next()
		case models.RolCliente:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "se requieren privilegios de administrador"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "rol desconocido"})
		}
	}
}

// Claims returns the verified token claims stored by RequireAuth.
func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

package middleware

import (
	"net/http"

	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only when the authenticated
// identity's status equals role exactly. It must run after JWTAuth; if no
// identity is present the request is rejected rather than let through.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok || claims.Status != role {
			utils.RespondError(c, utils.NewAppError(http.StatusForbidden, utils.CodeForbidden, "forbidden only for the "+role))
			c.Abort()
			return
		}
		c.Next()
	}
}

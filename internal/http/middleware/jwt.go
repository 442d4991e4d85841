package middleware

import (
	"net/http"
	"strings"

	"github.com/jayamiko/Visual-Book-App-Server/internal/token"
	"github.com/jayamiko/Visual-Book-App-Server/internal/utils"

	"github.com/gin-gonic/gin"
)

// identityKey is where JWTAuth stores the verified claims on the gin context.
const identityKey = "auth_identity"

// JWTAuth extracts a bearer token from the Authorization header and verifies
// it. A missing token is 401; a token that fails verification is 400, which
// mirrors the original API's asymmetry.
func JWTAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) < 2 {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, utils.CodeUnauthorized, "unauthorized"))
			c.Abort()
			return
		}

		claims, err := tokens.Verify(fields[1])
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, utils.CodeInvalidToken, "invalid token"))
			c.Abort()
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the claims attached by JWTAuth, if any.
func Identity(c *gin.Context) (*token.Claims, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*token.Claims)
	return claims, ok
}

// File: internal/middleware/identity.go
package middleware

import (
	"net/http"
	"strings"

	"bff_create_account/internal/common"
	"bff_create_account/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	msgIdentityFailed = "Erro no processo de buscar o ID do usuário"
	msgUnauthorized   = "Usuário não autorizado"
)

type tokenBody struct {
	UserToken string `json:"userToken"`
}

// IdentityMiddleware resolves the caller's user id from the token and stores
// it on the context. The token is read from the JSON body field userToken,
// falling back to an Authorization bearer header.
func IdentityMiddleware(resolver identity.UserIDResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)

		userID, err := resolver.ResolveUserID(token)
		if err != nil {
			logger.Warn("User id resolution failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(common.RequestIDKey)),
			)
			common.RespondWithError(c, msgIdentityFailed, err)
			return
		}
		if userID == "" {
			logger.Debug("Resolved user id is empty")
			common.RespondFailure(c, http.StatusUnauthorized, msgUnauthorized, nil)
			return
		}

		common.SetUserID(c, userID)
		c.Next()
	}
}

// tokenFromRequest keeps the body readable for later handlers.
func tokenFromRequest(c *gin.Context) string {
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		var body tokenBody
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
			if token := strings.TrimSpace(body.UserToken); token != "" {
				return token
			}
		}
	}
	return common.GetTokenFromHeader(c)
}

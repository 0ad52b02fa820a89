// File: internal/middleware/error.go
package middleware

import (
	"net/http"

	"bff_create_account/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgUnexpectedError  = "Erro inesperado no processamento da requisição"
	msgRouteNotFound    = "Rota não encontrada"
	msgMethodNotAllowed = "Método não permitido para esta rota"
)

// ErrorHandler turns errors left in the gin context by handlers into the failure envelope.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if appErr, ok := common.AsAppError(err); ok {
			common.RespondWithError(c, appErr.Message, appErr)
			return
		}
		logger.Error("Unhandled application error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(common.RequestIDKey)),
		)
		common.RespondFailure(c, http.StatusInternalServerError, msgUnexpectedError, common.ErrorDetail(err, gin.Mode() == gin.DebugMode))
	}
}

// NoRoute answers unknown routes with the failure envelope.
func NoRoute(c *gin.Context) {
	common.RespondFailure(c, http.StatusNotFound, msgRouteNotFound, nil)
}

// NoMethod answers known routes called with the wrong method.
func NoMethod(c *gin.Context) {
	common.RespondFailure(c, http.StatusMethodNotAllowed, msgMethodNotAllowed, nil)
}

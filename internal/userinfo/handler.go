// File: internal/userinfo/handler.go
package userinfo

import (
	"errors"

	"bff_create_account/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgFetchUserInfoFailed = "Erro no processo de buscar as informações do usuário"

// Handler struct holds dependencies for the user info handler.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new user info handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("UserInfoHandler"),
	}
}

// RegisterRoutes sets up GET /get-user-info behind the identity middleware.
func (h *Handler) RegisterRoutes(router gin.IRoutes, identityMW gin.HandlerFunc) {
	router.GET("/get-user-info", identityMW, h.getUserInfo)
}

func (h *Handler) getUserInfo(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == "" {
		// identity middleware did not run for this route
		common.RespondInternalError(c, h.logger, msgFetchUserInfoFailed, errors.New("user id missing from request context"))
		return
	}

	info, err := h.service.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		common.RespondInternalError(c, h.logger, msgFetchUserInfoFailed, err)
		return
	}
	common.RespondOK(c, info)
}

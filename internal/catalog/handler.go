// File: internal/catalog/handler.go
package catalog

import (
	"bff_create_account/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgFetchUserTypesFailed  = "Erro no processo de buscar os tipos de usuários"
	msgFetchAgentTypesFailed = "Erro no processo de buscar os tipos de agentes"
)

// Handler struct holds dependencies for catalog handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new catalog handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("CatalogHandler"),
	}
}

// RegisterRoutes sets up the catalog routes. Both are public.
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/get-user-types", h.getUserTypes)
	router.GET("/get-agent-types", h.getAgentTypes)
}

func (h *Handler) getUserTypes(c *gin.Context) {
	userTypes, err := h.service.GetUserTypes(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, h.logger, msgFetchUserTypesFailed, err)
		return
	}
	common.RespondOK(c, UserTypesResponse{UserTypes: userTypes})
}

func (h *Handler) getAgentTypes(c *gin.Context) {
	agentTypes, err := h.service.GetAgentTypes(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, h.logger, msgFetchAgentTypesFailed, err)
		return
	}
	common.RespondOK(c, AgentTypesResponse{AgentTypes: agentTypes})
}

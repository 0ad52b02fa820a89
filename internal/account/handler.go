// File: internal/account/handler.go
package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"bff_create_account/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	msgAccountCreated     = "Usuário cadastrado com sucesso"
	msgInvalidRequest     = "Dados inválidos na requisição"
	msgCreateAdminProcess = "Erro no processo de criar uma conta de administrador"
	msgCreateUserProcess  = "Erro no processo de criar uma conta de usuário"
)

// Handler struct holds dependencies for the account handler.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new account handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	common.UseJSONFieldNames()
	return &Handler{
		service: service,
		logger:  logger.Named("AccountHandler"),
	}
}

// RegisterRoutes sets up the routes for account creation.
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/create-admin-account", h.createAdminAccount)
	router.POST("/create-user-account", h.createUserAccount)
}

func (h *Handler) createAdminAccount(c *gin.Context) {
	var req CreateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Create admin account: invalid request body", zap.Error(err))
		h.respondInvalid(c, err)
		return
	}

	created, err := h.service.CreateAdminAccount(c.Request.Context(), req)
	if err == nil && !created {
		err = ErrNotCreated
	}
	if err != nil {
		common.RespondInternalError(c, h.logger, msgCreateAdminProcess, err)
		return
	}
	common.RespondCreated(c, msgAccountCreated)
}

// createUserAccount validates the body merged with the hash query parameter.
// A hash inside the JSON body is ignored.
func (h *Handler) createUserAccount(c *gin.Context) {
	var req CreateUserAccountRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		h.logger.Warn("Create user account: malformed request body", zap.Error(err))
		h.respondInvalid(c, err)
		return
	}
	req.Hash = c.Query("hash")

	if err := common.ValidateStruct(&req); err != nil {
		h.logger.Warn("Create user account: invalid request", zap.Error(err))
		h.respondInvalid(c, err)
		return
	}

	created, err := h.service.CreateUserAccount(c.Request.Context(), req)
	if err == nil && !created {
		err = ErrNotCreated
	}
	if err != nil {
		common.RespondInternalError(c, h.logger, msgCreateUserProcess, err)
		return
	}
	common.RespondCreated(c, msgAccountCreated)
}

func (h *Handler) respondInvalid(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		common.RespondFailure(c, http.StatusBadRequest, msgInvalidRequest, common.FormatValidationErrors(ve))
		return
	}
	common.RespondFailure(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
}

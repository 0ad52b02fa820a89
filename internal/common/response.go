// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse is the success envelope of creation endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DataResponse is the success envelope of read endpoints.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// FailureResponse is the error envelope shared by every route.
type FailureResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   interface{} `json:"error,omitempty"`
}

// RespondCreated sends a 201 Created response with a fixed message.
func RespondCreated(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, MessageResponse{Success: true, Message: message})
}

// RespondMessage sends a 200 OK response with a message and no data.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}

// RespondOK sends a 200 OK response wrapping data.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: data})
}

// RespondFailure aborts the request with the failure envelope.
// detail is rendered as-is; use ErrorDetail to render an error chain.
func RespondFailure(c *gin.Context, statusCode int, message string, detail interface{}) {
	c.AbortWithStatusJSON(statusCode, FailureResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// RespondWithError aborts with the status of err and the route-specific message.
func RespondWithError(c *gin.Context, message string, err error) {
	RespondFailure(c, StatusOf(err), message, ErrorDetail(err, gin.Mode() == gin.DebugMode))
}

// RespondInternalError logs err under message and answers 500 with the failure envelope.
// Post-validation failures of every route go through here.
func RespondInternalError(c *gin.Context, logger *zap.Logger, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(RequestIDKey)),
	)
	RespondFailure(c, http.StatusInternalServerError, message, ErrorDetail(err, gin.Mode() == gin.DebugMode))
}

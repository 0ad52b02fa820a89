// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// UserIDKey is the context key for the user id resolved from the user token
	UserIDKey = "userID"
	// RequestIDKey is the context key for the request id set by the logger middleware
	RequestIDKey = "requestID"
)

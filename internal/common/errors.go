// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AppError is the single error shape crossing component boundaries.
// Every layer that catches a failure re-wraps it with its own message and keeps
// the caught error as Cause, so errors.Is / errors.As still reach the root.
type AppError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError never fails. A zero status code is treated as 500.
func NewAppError(message string, statusCode int, cause error) *AppError {
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	return &AppError{Message: message, StatusCode: statusCode, Cause: cause}
}

// Wrap is the usual re-wrap used by adapters and use cases.
func Wrap(message string, cause error) *AppError {
	return NewAppError(message, http.StatusInternalServerError, cause)
}

// AsAppError returns the outermost AppError in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the status code of the outermost AppError, 500 otherwise.
func StatusOf(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// ErrorView is the public rendering of an AppError chain.
type ErrorView struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"`
	Cause      interface{} `json:"cause,omitempty"`
}

// ErrorDetail renders err for the "error" field of a failure envelope.
// Foreign causes (transport errors, driver errors) are only rendered when expose is true.
func ErrorDetail(err error, expose bool) interface{} {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		if expose {
			return ErrorView{Message: err.Error()}
		}
		return nil
	}
	view := ErrorView{Message: appErr.Message, StatusCode: appErr.StatusCode}
	if appErr.Cause != nil {
		if cause := ErrorDetail(appErr.Cause, expose); cause != nil {
			view.Cause = cause
		}
	}
	return view
}

// FormatValidationErrors converts validator.ValidationErrors into a map keyed by JSON field name.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMap := make(map[string]string)
	for _, e := range errs {
		field := e.Field()
		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", field)
		case "email":
			message = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "url", "uri":
			message = fmt.Sprintf("The %s field must be a valid URI.", field)
		case "min":
			message = fmt.Sprintf("The %s field must contain at least %s item(s).", field, e.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
		}
		errorMap[validationKey(e)] = message
	}
	return errorMap
}

// validationKey turns "UserAccountRequest.phones[0].type" into "phones[0].type".
func validationKey(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

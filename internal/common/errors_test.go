package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ChainKeepsRootCause(t *testing.T) {
	root := errors.New("connection refused")
	adapter := Wrap("Erro ao criar conta de usuário", root)
	domain := Wrap("Não foi possível criar a conta de usuário", adapter)

	assert.ErrorIs(t, domain, root)
	assert.Equal(t, "Não foi possível criar a conta de usuário", domain.Message)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(domain))

	inner, ok := AsAppError(domain.Cause)
	require.True(t, ok)
	assert.Equal(t, "Erro ao criar conta de usuário", inner.Message)
}

func TestNewAppError_DefaultsStatus(t *testing.T) {
	err := NewAppError("boom", 0, nil)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestStatusOf_ForeignError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("x")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewAppError("bad", http.StatusBadRequest, nil)))
}

func TestErrorDetail_ScrubsForeignCauses(t *testing.T) {
	err := Wrap("outer", NewAppError("inner", http.StatusBadGateway, errors.New("dial tcp 10.0.0.3:443")))

	scrubbed := ErrorDetail(err, false)
	assert.Equal(t, ErrorView{
		Message:    "outer",
		StatusCode: http.StatusInternalServerError,
		Cause:      ErrorView{Message: "inner", StatusCode: http.StatusBadGateway},
	}, scrubbed)

	exposed := ErrorDetail(err, true).(ErrorView)
	inner := exposed.Cause.(ErrorView)
	assert.Equal(t, ErrorView{Message: "dial tcp 10.0.0.3:443"}, inner.Cause)

	assert.Nil(t, ErrorDetail(errors.New("raw"), false))
	assert.Nil(t, ErrorDetail(nil, true))
}

type phoneProbe struct {
	Phone string `json:"phone" binding:"required"`
}

type probe struct {
	Email  string       `json:"email" binding:"required,email"`
	Link   string       `json:"companyLink" binding:"required,url"`
	Phones []phoneProbe `json:"phones" binding:"required,min=1,dive"`
	Hash   string       `json:"-" form:"hash" binding:"required"`
}

func TestValidateStruct_ReportsJSONNames(t *testing.T) {
	err := ValidateStruct(&probe{Email: "nope", Link: "not a link", Phones: []phoneProbe{{}}})
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	details := FormatValidationErrors(ve)

	assert.Contains(t, details, "email")
	assert.Contains(t, details, "companyLink")
	assert.Contains(t, details, "phones[0].phone")
	assert.Equal(t, "The hash field is required.", details["hash"])
}

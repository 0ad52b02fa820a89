package userinfo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bff_create_account/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockService is a mock type for userinfo.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetUserInfo(ctx context.Context, userID string) (*UserInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UserInfo), args.Error(1)
}

func fixedIdentity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		common.SetUserID(c, userID)
		c.Next()
	}
}

func setupRouter(service Service, identityMW gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(service, zap.NewNop()).RegisterRoutes(router, identityMW)
	return router
}

func TestGetUserInfo_Success(t *testing.T) {
	service := new(MockService)
	service.On("GetUserInfo", mock.Anything, "u1").Return(&UserInfo{
		Name:       "A",
		Surname:    "B",
		IDPUserID:  "u1",
		UserTypeID: 1,
		CompanyID:  9,
		Active:     true,
	}, nil)

	w := httptest.NewRecorder()
	router := setupRouter(service, fixedIdentity("u1"))
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-user-info", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"data": {
			"name": "A",
			"surname": "B",
			"idpUserId": "u1",
			"userTypeId": 1,
			"admin": false,
			"companyId": 9,
			"active": true
		}
	}`, w.Body.String())
	service.AssertExpectations(t)
}

func TestGetUserInfo_ServiceFailure(t *testing.T) {
	service := new(MockService)
	service.On("GetUserInfo", mock.Anything, "u1").Return(nil, common.Wrap(msgUseCaseUserInfo, errors.New("boom")))

	w := httptest.NewRecorder()
	router := setupRouter(service, fixedIdentity("u1"))
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-user-info", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgFetchUserInfoFailed, body["message"])
	assert.NotNil(t, body["error"])
}

func TestGetUserInfo_WithoutIdentity(t *testing.T) {
	service := new(MockService)
	router := setupRouter(service, func(c *gin.Context) { c.Next() })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-user-info", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	service.AssertNotCalled(t, "GetUserInfo", mock.Anything, mock.Anything)
}

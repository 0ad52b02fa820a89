package userinfo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"bff_create_account/internal/common"
	"bff_create_account/internal/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFacade is a mock type for directory.Facade
type MockFacade struct {
	mock.Mock
}

func (m *MockFacade) GetUserTypes(ctx context.Context) ([]directory.UserTypeEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.UserTypeEntity), args.Error(1)
}

func (m *MockFacade) GetAgentTypes(ctx context.Context) ([]directory.AgentTypeEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.AgentTypeEntity), args.Error(1)
}

func (m *MockFacade) GetUserByIDPUserID(ctx context.Context, idpUserID string) (*directory.UserEntity, error) {
	args := m.Called(ctx, idpUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.UserEntity), args.Error(1)
}

func TestGetUserInfo_MapsEveryField(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	facade := new(MockFacade)
	facade.On("GetUserByIDPUserID", mock.Anything, "u1").Return(&directory.UserEntity{
		Name:       directory.StringValue{Value: "A"},
		Surname:    directory.StringValue{Value: "B"},
		IDPUserID:  directory.StringValue{Value: "u1"},
		UserTypeID: directory.IntValue{Value: 1},
		Admin:      false,
		CompanyID:  directory.IntValue{Value: 9},
		Active:     true,
		CreatedAt:  &createdAt,
	}, nil)

	info, err := NewDirectoryRepository(facade).GetUserInfo(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &UserInfo{
		Name:       "A",
		Surname:    "B",
		IDPUserID:  "u1",
		UserTypeID: 1,
		Admin:      false,
		CompanyID:  9,
		Active:     true,
		CreatedAt:  &createdAt,
	}, info)
	facade.AssertExpectations(t)
}

func TestGetUserInfo_FailuresAre500(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		cause error
	}{
		{name: "not found", err: directory.ErrUserNotFound, cause: directory.ErrUserNotFound},
		{name: "directory down", err: errors.New("connection refused")},
		{name: "nil user", cause: directory.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := new(MockFacade)
			facade.On("GetUserByIDPUserID", mock.Anything, "u1").Return(nil, tt.err)

			info, err := NewDirectoryRepository(facade).GetUserInfo(context.Background(), "u1")
			assert.Nil(t, info)
			require.Error(t, err)

			appErr, ok := common.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
			assert.Equal(t, msgRepoUserInfo, appErr.Message)
			if tt.cause != nil {
				assert.True(t, errors.Is(err, tt.cause))
			}
		})
	}
}

func TestService_RewrapsRepositoryFailure(t *testing.T) {
	facade := new(MockFacade)
	facade.On("GetUserByIDPUserID", mock.Anything, "u1").Return(nil, directory.ErrUserNotFound)

	_, err := NewService(NewDirectoryRepository(facade)).GetUserInfo(context.Background(), "u1")
	require.Error(t, err)

	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, msgUseCaseUserInfo, appErr.Message)

	inner, ok := common.AsAppError(appErr.Cause)
	require.True(t, ok)
	assert.Equal(t, msgRepoUserInfo, inner.Message)
	assert.True(t, errors.Is(err, directory.ErrUserNotFound))
}

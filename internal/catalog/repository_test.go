package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"

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

func TestListUserTypes_MapsValueFields(t *testing.T) {
	facade := new(MockFacade)
	facade.On("GetUserTypes", mock.Anything).Return([]directory.UserTypeEntity{
		{UserTypeID: directory.IntValue{Value: 1}, UserType: directory.StringValue{Value: "Administrador"}},
		{UserTypeID: directory.IntValue{Value: 2}, UserType: directory.StringValue{Value: "Corretor"}},
	}, nil)

	userTypes, err := NewDirectoryRepository(facade).ListUserTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []UserType{{ID: 1, Name: "Administrador"}, {ID: 2, Name: "Corretor"}}, userTypes)
	facade.AssertExpectations(t)
}

func TestListUserTypes_EmptyIsSuccess(t *testing.T) {
	facade := new(MockFacade)
	facade.On("GetUserTypes", mock.Anything).Return([]directory.UserTypeEntity{}, nil)

	userTypes, err := NewDirectoryRepository(facade).ListUserTypes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, userTypes)
	assert.Empty(t, userTypes)
}

func TestListUserTypes_FacadeFailure(t *testing.T) {
	root := errors.New("db down")
	facade := new(MockFacade)
	facade.On("GetUserTypes", mock.Anything).Return(nil, root)

	_, err := NewDirectoryRepository(facade).ListUserTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, root)
	assert.Equal(t, http.StatusInternalServerError, common.StatusOf(err))
}

func TestListAgentTypes_MapsValueFields(t *testing.T) {
	facade := new(MockFacade)
	facade.On("GetAgentTypes", mock.Anything).Return([]directory.AgentTypeEntity{
		{AgentTypeID: directory.IntValue{Value: 3}, AgentType: directory.StringValue{Value: "Imobiliária"}},
	}, nil)

	agentTypes, err := NewDirectoryRepository(facade).ListAgentTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []AgentType{{ID: 3, Name: "Imobiliária"}}, agentTypes)
}

func TestListAgentTypes_AbsenceIsFailure(t *testing.T) {
	for name, result := range map[string]interface{}{
		"nil":   nil,
		"empty": []directory.AgentTypeEntity{},
	} {
		t.Run(name, func(t *testing.T) {
			facade := new(MockFacade)
			facade.On("GetAgentTypes", mock.Anything).Return(result, nil)

			agentTypes, err := NewDirectoryRepository(facade).ListAgentTypes(context.Background())
			assert.Nil(t, agentTypes)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNoAgentTypes)
			assert.Equal(t, http.StatusInternalServerError, common.StatusOf(err))
		})
	}
}

func TestListAgentTypes_FacadeFailure(t *testing.T) {
	facade := new(MockFacade)
	facade.On("GetAgentTypes", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewDirectoryRepository(facade).ListAgentTypes(context.Background())
	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, msgRepoAgentTypes, appErr.Message)
}

// File: internal/catalog/service.go
package catalog

import (
	"context"

	"bff_create_account/internal/common"
)

const (
	msgUseCaseUserTypes  = "Erro ao obter tipos de usuários"
	msgUseCaseAgentTypes = "Erro ao obter tipos de agente"
)

// Service defines the catalog use cases.
type Service interface {
	GetUserTypes(ctx context.Context) ([]UserType, error)
	GetAgentTypes(ctx context.Context) ([]AgentType, error)
}

// ServiceImplementation is a thin coordinator over Repository.
type ServiceImplementation struct {
	repo Repository
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new catalog service.
func NewService(repo Repository) *ServiceImplementation {
	return &ServiceImplementation{repo: repo}
}

func (s *ServiceImplementation) GetUserTypes(ctx context.Context) ([]UserType, error) {
	userTypes, err := s.repo.ListUserTypes(ctx)
	if err != nil {
		return nil, common.Wrap(msgUseCaseUserTypes, err)
	}
	return userTypes, nil
}

func (s *ServiceImplementation) GetAgentTypes(ctx context.Context) ([]AgentType, error) {
	agentTypes, err := s.repo.ListAgentTypes(ctx)
	if err != nil {
		return nil, common.Wrap(msgUseCaseAgentTypes, err)
	}
	return agentTypes, nil
}

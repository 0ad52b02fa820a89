// File: internal/catalog/repository.go
package catalog

import (
	"context"
	"errors"

	"bff_create_account/internal/common"
	"bff_create_account/internal/directory"
)

const (
	msgRepoUserTypes  = "Erro ao obter tipos de usuários"
	msgRepoAgentTypes = "Erro ao obter tipos de agente"
	msgNoAgentTypes   = "Erro ao buscar os tipos de agentes"
)

// ErrNoAgentTypes is the cause when the directory returns no agent types.
var ErrNoAgentTypes = errors.New("directory returned no agent types")

// Repository defines the catalog read operations over the directory.
type Repository interface {
	ListUserTypes(ctx context.Context) ([]UserType, error)
	ListAgentTypes(ctx context.Context) ([]AgentType, error)
}

type directoryRepository struct {
	facade directory.Facade
}

// NewDirectoryRepository creates a catalog repository backed by the directory facade.
func NewDirectoryRepository(facade directory.Facade) Repository {
	return &directoryRepository{facade: facade}
}

// ListUserTypes returns every user type. An empty directory yields an empty list.
func (r *directoryRepository) ListUserTypes(ctx context.Context) ([]UserType, error) {
	entities, err := r.facade.GetUserTypes(ctx)
	if err != nil {
		return nil, common.Wrap(msgRepoUserTypes, err)
	}
	userTypes := make([]UserType, 0, len(entities))
	for _, entity := range entities {
		userTypes = append(userTypes, UserType{ID: entity.UserTypeID.Value, Name: entity.UserType.Value})
	}
	return userTypes, nil
}

// ListAgentTypes returns every agent type. Unlike user types, an empty result is a failure.
func (r *directoryRepository) ListAgentTypes(ctx context.Context) ([]AgentType, error) {
	entities, err := r.facade.GetAgentTypes(ctx)
	if err != nil {
		return nil, common.Wrap(msgRepoAgentTypes, err)
	}
	if len(entities) == 0 {
		return nil, common.Wrap(msgRepoAgentTypes, common.Wrap(msgNoAgentTypes, ErrNoAgentTypes))
	}
	agentTypes := make([]AgentType, 0, len(entities))
	for _, entity := range entities {
		agentTypes = append(agentTypes, AgentType{ID: entity.AgentTypeID.Value, Name: entity.AgentType.Value})
	}
	return agentTypes, nil
}

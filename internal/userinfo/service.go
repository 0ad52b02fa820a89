// File: internal/userinfo/service.go
package userinfo

import (
	"context"

	"bff_create_account/internal/common"
)

const msgUseCaseUserInfo = "Erro ao obter as informações do usuário"

// Service defines the user info use case.
type Service interface {
	GetUserInfo(ctx context.Context, userID string) (*UserInfo, error)
}

// ServiceImplementation delegates to Repository and re-wraps its failures.
type ServiceImplementation struct {
	repo Repository
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new user info service.
func NewService(repo Repository) *ServiceImplementation {
	return &ServiceImplementation{repo: repo}
}

func (s *ServiceImplementation) GetUserInfo(ctx context.Context, userID string) (*UserInfo, error) {
	info, err := s.repo.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, common.Wrap(msgUseCaseUserInfo, err)
	}
	return info, nil
}

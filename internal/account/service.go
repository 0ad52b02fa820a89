// File: internal/account/service.go
package account

import (
	"context"
	"errors"

	"bff_create_account/internal/common"

	"go.uber.org/zap"
)

const (
	msgDomainCreateAdmin = "Não foi possível criar uma conta de administrador"
	msgDomainCreateUser  = "Não foi possível criar a conta de usuário"
)

// ErrNotCreated is the cause when the gateway answers without error but reports no account created.
var ErrNotCreated = errors.New("account was not created")

// Gateway is the outbound port to the account provisioning service.
type Gateway interface {
	CreateAdminAccount(ctx context.Context, req CreateAdminAccountRequest) (bool, error)
	CreateUserAccount(ctx context.Context, req CreateUserAccountRequest) (bool, error)
}

// Service defines the account creation use cases.
type Service interface {
	CreateAdminAccount(ctx context.Context, req CreateAdminAccountRequest) (bool, error)
	CreateUserAccount(ctx context.Context, req CreateUserAccountRequest) (bool, error)
}

// ServiceImplementation delegates to the gateway and re-wraps its failures.
type ServiceImplementation struct {
	gateway Gateway
	logger  *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new account service.
func NewService(gateway Gateway, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{gateway: gateway, logger: logger}
}

// CreateAdminAccount creates an admin account through the provisioning service.
func (s *ServiceImplementation) CreateAdminAccount(ctx context.Context, req CreateAdminAccountRequest) (bool, error) {
	ok, err := s.gateway.CreateAdminAccount(ctx, req)
	if err != nil {
		return false, common.Wrap(msgDomainCreateAdmin, err)
	}
	if !ok {
		return false, common.Wrap(msgDomainCreateAdmin, ErrNotCreated)
	}
	s.logger.Debug("Admin account created", zap.String("email", req.Email))
	return true, nil
}

// CreateUserAccount creates a user account through the provisioning service.
func (s *ServiceImplementation) CreateUserAccount(ctx context.Context, req CreateUserAccountRequest) (bool, error) {
	ok, err := s.gateway.CreateUserAccount(ctx, req)
	if err != nil {
		return false, common.Wrap(msgDomainCreateUser, err)
	}
	if !ok {
		return false, common.Wrap(msgDomainCreateUser, ErrNotCreated)
	}
	s.logger.Debug("User account created", zap.String("email", req.Email))
	return true, nil
}

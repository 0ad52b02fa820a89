// File: internal/userinfo/repository.go
package userinfo

import (
	"context"

	"bff_create_account/internal/common"
	"bff_create_account/internal/directory"
)

const msgRepoUserInfo = "Erro ao buscar as informações do usuário a partir do ID de Usuário"

// Repository defines the user profile lookup.
type Repository interface {
	GetUserInfo(ctx context.Context, userID string) (*UserInfo, error)
}

type directoryRepository struct {
	facade directory.Facade
}

// NewDirectoryRepository creates a user info repository backed by the directory facade.
func NewDirectoryRepository(facade directory.Facade) Repository {
	return &directoryRepository{facade: facade}
}

// GetUserInfo looks up userID as an identity provider id. Not-found and
// transient failures are both reported as 500.
func (r *directoryRepository) GetUserInfo(ctx context.Context, userID string) (*UserInfo, error) {
	user, err := r.facade.GetUserByIDPUserID(ctx, userID)
	if err != nil {
		return nil, common.Wrap(msgRepoUserInfo, err)
	}
	if user == nil {
		return nil, common.Wrap(msgRepoUserInfo, directory.ErrUserNotFound)
	}
	return &UserInfo{
		Name:       user.Name.Value,
		Surname:    user.Surname.Value,
		IDPUserID:  user.IDPUserID.Value,
		UserTypeID: user.UserTypeID.Value,
		Admin:      user.Admin,
		CompanyID:  user.CompanyID.Value,
		Active:     user.Active,
		CreatedAt:  user.CreatedAt,
	}, nil
}

// File: internal/directory/facade.go
package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bff_create_account/internal/config"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no user matches the identity provider id.
var ErrUserNotFound = errors.New("directory: user not found")

// Facade defines the read operations of the user/agent directory.
// A nil slice from GetAgentTypes means the directory returned nothing.
type Facade interface {
	GetUserTypes(ctx context.Context) ([]UserTypeEntity, error)
	GetAgentTypes(ctx context.Context) ([]AgentTypeEntity, error)
	GetUserByIDPUserID(ctx context.Context, idpUserID string) (*UserEntity, error)
}

type gormFacade struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGORMFacade creates a GORM backed directory facade.
// THIS MUST RETURN THE INTERFACE TYPE: directory.Facade
func NewGORMFacade(db *gorm.DB, cfg *config.Config) Facade {
	return &gormFacade{db: db, timeout: cfg.DirectoryTimeout}
}

// withTimeout bounds a single directory call. A zero timeout keeps ctx as is.
func (f *gormFacade) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, f.timeout)
}

// GetUserTypes lists every user type.
func (f *gormFacade) GetUserTypes(ctx context.Context) ([]UserTypeEntity, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	var rows []UserTypeRow
	if err := f.db.WithContext(ctx).Order("user_type_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("directory: query user types: %w", err)
	}
	entities := make([]UserTypeEntity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, row.toEntity())
	}
	return entities, nil
}

// GetAgentTypes lists every agent type. Returns nil when the table is empty.
func (f *gormFacade) GetAgentTypes(ctx context.Context) ([]AgentTypeEntity, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	var rows []AgentTypeRow
	if err := f.db.WithContext(ctx).Order("agent_type_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("directory: query agent types: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	entities := make([]AgentTypeEntity, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, row.toEntity())
	}
	return entities, nil
}

// GetUserByIDPUserID retrieves a user by their identity provider id.
func (f *gormFacade) GetUserByIDPUserID(ctx context.Context, idpUserID string) (*UserEntity, error) {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	var row UserRow
	err := f.db.WithContext(ctx).Where("idp_user_id = ?", idpUserID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("directory: query user: %w", err)
	}
	return row.toEntity(), nil
}

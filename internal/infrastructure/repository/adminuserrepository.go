package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/adminuser"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/mappers"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
	"github.com/cotracker/cotracker/internal/shared/db"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
)

type AdminUserRepository struct {
	db     *gorm.DB
	mapper mappers.AdminUserMapper
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db, mapper: mappers.NewAdminUserMapper()}
}

func (r *AdminUserRepository) Create(ctx context.Context, user *adminuser.AdminUser) error {
	model := r.mapper.ToModel(user)
	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", adminuser.ErrAdminUserExists, user.Username())
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	user.SetID(model.ID)
	return nil
}

func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*adminuser.AdminUser, error) {
	return r.getWhere(ctx, "username = ?", username)
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id uint) (*adminuser.AdminUser, error) {
	return r.getWhere(ctx, "id = ?", id)
}

func (r *AdminUserRepository) getWhere(ctx context.Context, query string, arg interface{}) (*adminuser.AdminUser, error) {
	var model models.AdminUserModel
	if err := db.Conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminuser.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

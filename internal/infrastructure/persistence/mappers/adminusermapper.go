package mappers

import (
	"time"

	"github.com/cotracker/cotracker/internal/domain/adminuser"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
)

type AdminUserMapper interface {
	ToModel(u *adminuser.AdminUser) *models.AdminUserModel
	ToDomain(m *models.AdminUserModel) *adminuser.AdminUser
}

type AdminUserMapperImpl struct{}

func NewAdminUserMapper() AdminUserMapper {
	return &AdminUserMapperImpl{}
}

func (m *AdminUserMapperImpl) ToModel(u *adminuser.AdminUser) *models.AdminUserModel {
	return &models.AdminUserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *AdminUserMapperImpl) ToDomain(model *models.AdminUserModel) *adminuser.AdminUser {
	return adminuser.ReconstructAdminUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Role,
		time.UnixMilli(model.CreatedAt),
	)
}

package usecases

import (
	"context"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/shared/constants"
)

// PermissionChecker answers RBAC questions for a role.
type PermissionChecker interface {
	Enforce(role, resource, action string) (bool, error)
}

// Resources lists everything the admin site manages, in index order.
var Resources = []string{
	constants.ResourcePilots,
	constants.ResourceAirstrips,
	constants.ResourceAircraftTypes,
	constants.ResourceCheckouts,
}

type AdminIndexQuery struct {
	Username string
	Role     string
}

// AdminIndexUseCase lists the admin resources with what the caller's role
// may do with each one.
type AdminIndexUseCase struct {
	permissions PermissionChecker
	basePath    string
}

func NewAdminIndexUseCase(permissions PermissionChecker, basePath string) *AdminIndexUseCase {
	return &AdminIndexUseCase{permissions: permissions, basePath: basePath}
}

func (uc *AdminIndexUseCase) Execute(ctx context.Context, query AdminIndexQuery) (*dto.AdminIndexDTO, error) {
	resources := make([]dto.ResourceDTO, 0, len(Resources))
	for _, name := range Resources {
		canRead, err := uc.permissions.Enforce(query.Role, name, constants.ActionRead)
		if err != nil {
			return nil, fmt.Errorf("failed to check read permission on %s: %w", name, err)
		}
		canWrite, err := uc.permissions.Enforce(query.Role, name, constants.ActionWrite)
		if err != nil {
			return nil, fmt.Errorf("failed to check write permission on %s: %w", name, err)
		}
		if !canRead && !canWrite {
			continue
		}
		resources = append(resources, dto.ResourceDTO{
			Name:     name,
			Path:     uc.basePath + "/" + name + "/",
			CanRead:  canRead,
			CanWrite: canWrite,
		})
	}

	return &dto.AdminIndexDTO{
		Username:  query.Username,
		Role:      query.Role,
		Resources: resources,
	}, nil
}

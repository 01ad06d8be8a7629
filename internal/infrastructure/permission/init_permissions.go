package permission

import (
	"fmt"

	"github.com/cotracker/cotracker/internal/shared/constants"
)

// InitAdminPermissions installs the default admin site policies. Instructors
// read everything and record checkouts; admins inherit that and may change
// anything. Running it again changes nothing.
func InitAdminPermissions(e *Enforcer) error {
	policies := [][]string{
		{constants.RoleInstructor, "*", constants.ActionRead},
		{constants.RoleInstructor, constants.ResourceCheckouts, constants.ActionWrite},
		{constants.RoleAdmin, "*", constants.ActionWrite},
	}

	for _, p := range policies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.AddRoleInheritance(constants.RoleAdmin, constants.RoleInstructor); err != nil {
		return err
	}

	e.logger.Info("admin permissions initialized successfully")
	return nil
}

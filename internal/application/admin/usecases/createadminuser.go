package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/domain/adminuser"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

const minPasswordLength = 8

type CreateAdminUserCommand struct {
	Username string
	Password string
	Role     string
}

// CreateAdminUserUseCase is driven by the admin create-user CLI command.
type CreateAdminUserUseCase struct {
	userRepo adminuser.Repository
	hasher   adminuser.PasswordHasher
	logger   logger.Interface
}

func NewCreateAdminUserUseCase(userRepo adminuser.Repository, hasher adminuser.PasswordHasher, logger logger.Interface) *CreateAdminUserUseCase {
	return &CreateAdminUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *CreateAdminUserUseCase) Execute(ctx context.Context, cmd CreateAdminUserCommand) (*dto.AdminUserDTO, error) {
	if len(cmd.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := adminuser.NewAdminUser(cmd.Username, hash, cmd.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, adminuser.ErrAdminUserExists) {
			return nil, apperrors.NewConflictError("admin user already exists", cmd.Username)
		}
		uc.logger.Errorw("failed to create admin user", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	uc.logger.Infow("admin user created", "username", user.Username(), "role", user.Role())

	return &dto.AdminUserDTO{ID: user.ID(), Username: user.Username(), Role: user.Role()}, nil
}

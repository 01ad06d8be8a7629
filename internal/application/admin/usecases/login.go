package usecases

import (
	"context"
	"errors"

	"github.com/cotracker/cotracker/internal/application/admin/dto"
	"github.com/cotracker/cotracker/internal/domain/adminuser"
	apperrors "github.com/cotracker/cotracker/internal/shared/errors"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// TokenIssuer signs admin access tokens.
type TokenIssuer interface {
	Generate(userID uint, username, role string) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	Username string
	Password string
	ClientIP string
}

type LoginUseCase struct {
	userRepo adminuser.Repository
	hasher   adminuser.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo adminuser.Repository,
	hasher adminuser.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, adminuser.ErrAdminUserNotFound) {
			uc.logger.Warnw("admin login for unknown user", "username", cmd.Username, "ip", cmd.ClientIP)
			return nil, apperrors.NewUnauthorizedError(adminuser.ErrInvalidPassword.Error())
		}
		uc.logger.Errorw("failed to load admin user", "username", cmd.Username, "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(user.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("admin login with wrong password", "username", cmd.Username, "ip", cmd.ClientIP)
		return nil, apperrors.NewUnauthorizedError(adminuser.ErrInvalidPassword.Error())
	}

	token, expiresIn, err := uc.tokens.Generate(user.ID(), user.Username(), user.Role())
	if err != nil {
		uc.logger.Errorw("failed to sign admin token", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("admin logged in", "username", user.Username(), "role", user.Role())

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        user.Role(),
	}, nil
}

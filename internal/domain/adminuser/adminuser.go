package adminuser

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/cotracker/cotracker/internal/shared/constants"
)

var (
	ErrAdminUserNotFound = errors.New("admin user not found")
	ErrAdminUserExists   = errors.New("admin user already exists")
	ErrInvalidUsername   = errors.New("username must be 3-30 letters, digits or underscores")
	ErrInvalidRole       = errors.New("role must be admin or instructor")
	ErrInvalidPassword   = errors.New("invalid username or password")
)

var usernamePattern = regexp.MustCompile(`^\w{3,30}$`)

// AdminUser is an operator of the admin site. The password is held only as a
// hash produced by the infrastructure hasher.
type AdminUser struct {
	id           uint
	username     string
	passwordHash string
	role         string
	createdAt    time.Time
}

func NewAdminUser(username, passwordHash, role string) (*AdminUser, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if !IsValidRole(role) {
		return nil, ErrInvalidRole
	}
	return &AdminUser{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAdminUser(id uint, username, passwordHash, role string, createdAt time.Time) *AdminUser {
	return &AdminUser{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (u *AdminUser) ID() uint             { return u.id }
func (u *AdminUser) Username() string     { return u.username }
func (u *AdminUser) PasswordHash() string { return u.passwordHash }
func (u *AdminUser) Role() string         { return u.role }
func (u *AdminUser) CreatedAt() time.Time { return u.createdAt }
func (u *AdminUser) SetID(id uint)        { u.id = id }

func IsValidRole(role string) bool {
	return role == constants.RoleAdmin || role == constants.RoleInstructor
}

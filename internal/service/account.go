package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/authz"
	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// RegisterRequest carries the fields of an account registration.
type RegisterRequest struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 models.Role
}

// AccountService creates user accounts under the registration policy:
// anonymous callers may self-register as athlete, coaches may create
// athletes, admins may create coaches. Nothing else.
type AccountService interface {
	Register(ctx context.Context, caller *models.User, req RegisterRequest) (*models.User, error)
}

type accountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(userRepo repository.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

// Register validates the request, checks the caller's creation rights and
// inserts the account. All checks run before the insert; a denied request
// leaves no row behind. Duplicate emails are detected by the unique index,
// so a racing second writer fails instead of overwriting.
func (s *accountService) Register(ctx context.Context, caller *models.User, req RegisterRequest) (*models.User, error) {
	if req.Role != models.RoleAthlete && req.Role != models.RoleCoach {
		return nil, ErrInvalidRole
	}
	if req.Password != req.PasswordConfirmation {
		return nil, ErrPasswordMismatch
	}

	if caller == nil {
		// Self-registration covers athlete accounts only.
		if req.Role != models.RoleAthlete {
			return nil, authz.ErrForbidden
		}
	} else if !authz.CanCreateRole(caller.Role, req.Role) {
		return nil, authz.ErrForbidden
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return user, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/EliandyDumortier/Cycling-App/internal/models"
	"github.com/EliandyDumortier/Cycling-App/internal/repository"
)

// LoginResponse is the payload returned on successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      int64  `json:"-"`
}

// AuthService verifies credentials, issues access tokens and resolves
// bearer tokens back to user records.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	ResolveIdentity(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// VerifyCredentials looks up the user by email and compares the password
// against the stored bcrypt hash. Unknown email and wrong password both
// collapse into ErrInvalidCredentials; infrastructure failures are passed
// through so they cannot be mistaken for a bad login.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.jwtService.AccessExpiry().Seconds()),
		UserID:      user.ID,
	}, nil
}

// ResolveIdentity validates the token and maps its subject back to a user
// record. Read-only and idempotent: the same valid token resolves to the
// same user until it expires.
func (s *authService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}

	return user, nil
}

// HashPassword hashes a plaintext password with bcrypt. Each call salts
// independently, so equal inputs produce distinct hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

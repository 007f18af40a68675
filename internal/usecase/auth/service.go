package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-manager/internal/domain/entities"
	"github.com/johnquangdev/meeting-manager/internal/domain/repositories"
	uerrors "github.com/johnquangdev/meeting-manager/internal/usecase/errors"
	"github.com/johnquangdev/meeting-manager/pkg/jwt"
)

// Service handles registration and login
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginResult carries the issued token and its owner
type LoginResult struct {
	Token string
	User  *entities.User
}

// Register creates a new user with a bcrypt password hash
func (s *Service) Register(ctx context.Context, email, password, name string) (*entities.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, uerrors.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(email, name, string(hash))
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", uerrors.ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a signed access token
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, uerrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/godownhub/marketplace/internal/models"
	"github.com/godownhub/marketplace/internal/repository"
	"github.com/godownhub/marketplace/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string, roles []string, contactNumber *string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetProfile(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GrantRole(ctx context.Context, id uint, role string) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

func NewUserService(userRepo repository.UserRepository, issuer *token.Issuer) UserService {
	return &userService{userRepo: userRepo, issuer: issuer}
}

func (s *userService) Register(ctx context.Context, name, email, password string, roles []string, contactNumber *string) (*models.User, string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		Roles:         roles,
		ContactNumber: contactNumber,
		IsActive:      true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	signed, err := s.issuer.Issue(user.ID, user.Roles)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user.ID, user.Roles)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GrantRole adds a role to the user's set. Existing roles are kept; the set
// never holds duplicates.
func (s *userService) GrantRole(ctx context.Context, id uint, role string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.HasRole(role) {
		user.Roles = append(user.Roles, role)
		if err := s.userRepo.UpdateRoles(ctx, id, user.Roles); err != nil {
			return nil, fmt.Errorf("update roles: %w", err)
		}
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, id)
}

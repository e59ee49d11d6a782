// Package user provides CRUD operations over API users. Passwords are
// stored as bcrypt hashes.
package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"paycore/internal/models"
	"paycore/internal/repositories"
)

var cpfPattern = regexp.MustCompile(`^[0-9]{11}$`)

// Service defines the user service interface.
type Service interface {
	Create(ctx context.Context, input models.CreateUserInput) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, input models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
	CheckPassword(ctx context.Context, email, password string) (*models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

// NewService creates a new user service.
func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("user repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, input models.CreateUserInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingField
	}
	if err := validateUserType(input.UserType); err != nil {
		return nil, err
	}
	if !cpfPattern.MatchString(input.CPF) {
		return nil, ErrInvalidCPF
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	superHash := ""
	if input.SuperPassword != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.SuperPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash super password: %w", err)
		}
		superHash = string(h)
	}

	now := time.Now()
	user := &models.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hash),
		CPF:           input.CPF,
		UserType:      input.UserType,
		EmployeeCode:  input.EmployeeCode,
		SuperPassword: superHash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *service) Update(ctx context.Context, id string, input models.UpdateUserInput) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.CPF != "" {
		if !cpfPattern.MatchString(input.CPF) {
			return nil, ErrInvalidCPF
		}
		user.CPF = input.CPF
	}
	if input.UserType != "" {
		if err := validateUserType(input.UserType); err != nil {
			return nil, err
		}
		user.UserType = input.UserType
	}
	if input.EmployeeCode != "" {
		user.EmployeeCode = input.EmployeeCode
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if input.SuperPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.SuperPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash super password: %w", err)
		}
		user.SuperPassword = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// CheckPassword verifies the given plaintext password against the stored
// hash for the user with the given email.
func (s *service) CheckPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, fmt.Errorf("password mismatch: %w", err)
	}
	return user, nil
}

func validateUserType(typ models.UserType) error {
	switch typ {
	case models.UserCustomer, models.UserManager, models.UserAdmin:
		return nil
	default:
		return ErrInvalidUserType
	}
}

package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/myhien-tailor/engagement/internal/models"
	"github.com/myhien-tailor/engagement/internal/storage"
)

var (
	ErrUserIsAlreadyRegistered = errors.New("user is already registered")
	ErrUserIsNotExist          = errors.New("user does not exist")
	ErrPasswordIsIncorrect     = errors.New("password is incorrect")
)

// AuthStorage is the slice of the store the auth service needs.
type AuthStorage interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUser(ctx context.Context, login string) (*models.User, error)
}

// AuthService registers customers and verifies their credentials.
type AuthService struct {
	storage AuthStorage
}

func NewAuthService(storage AuthStorage) *AuthService {
	return &AuthService{storage: storage}
}

// Register creates the customer account with a bcrypt password hash.
func (auth *AuthService) Register(ctx context.Context, user models.UnknownUser) error {
	if err := validateUser(user); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = auth.storage.CreateUser(ctx, models.User{
		Login: *user.Login,
		Name:  user.Name,
		Phone: user.Phone,
		Email: user.Email,
		Hash:  string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateUser) {
			return ErrUserIsAlreadyRegistered
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login checks the credentials against the stored hash.
func (auth *AuthService) Login(ctx context.Context, user models.UnknownUser) error {
	if err := validateUser(user); err != nil {
		return err
	}

	u, err := auth.storage.FindUser(ctx, *user.Login)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if u == nil {
		return ErrUserIsNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(*user.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordIsIncorrect
		}
		return fmt.Errorf("failed to compare passwords: %w", err)
	}

	return nil
}

// GetUser returns the account for the login.
func (auth *AuthService) GetUser(ctx context.Context, login string) (*models.User, error) {
	user, err := auth.storage.FindUser(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user == nil {
		return nil, ErrUserIsNotExist
	}

	return user, nil
}

func validateUser(user models.UnknownUser) error {
	if user.Login == nil || *user.Login == "" {
		return errors.New("login must not be empty")
	}
	if user.Password == nil || *user.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

// Package auth handles account registration and login for the token
// middleware in front of the wallet and friend routes.
package auth

import (
	stderrors "errors"
	"fmt"
	"time"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service is the authentication contract.
type Service interface {
	Register(name, email, phone, password string) (*models.User, error)
	Login(identifier, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
}

type service struct {
	users   repositories.UserRepository
	wallets repositories.WalletRepository
}

// NewService creates the auth service. The wallet repository is used
// to provision a wallet for every new account.
func NewService(users repositories.UserRepository, wallets repositories.WalletRepository) Service {
	return &service{users: users, wallets: wallets}
}

func (s *service) Register(name, email, phone, password string) (*models.User, error) {
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errors.ErrEmailTaken
	}
	if _, err := s.users.GetByPhone(phone); err == nil {
		return nil, errors.ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	if _, err := s.wallets.GetOrCreate(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Login accepts an email or a phone number as identifier.
func (s *service) Login(identifier, password string) (*models.User, string, string, error) {
	user, err := s.users.GetByEmail(identifier)
	if err != nil {
		user, err = s.users.GetByPhone(identifier)
	}
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return nil, "", "", errors.ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", errors.ErrInvalidCredentials
	}

	access, refresh, err := utils.GenerateTokens(claimsFor(user))
	if err != nil {
		return nil, "", "", err
	}

	user.LastLoginAt = time.Now()
	if err := s.users.Update(user); err != nil {
		return nil, "", "", err
	}

	return user, access, refresh, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.ErrNotAuthorized
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.ErrNotAuthorized
	}

	return utils.GenerateTokens(claimsFor(user))
}

func claimsFor(user *models.User) *models.UserClaims {
	return &models.UserClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
	}
}

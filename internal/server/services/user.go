// Package services contains the application services behind the HTTP
// handlers: account management and entry bookkeeping.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"herbtrack/internal/server/models"
	"herbtrack/internal/server/repositories/users"
	"herbtrack/internal/shared"
)

// UserService registers accounts and checks credentials.
type UserService struct {
	repo users.Repository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. Username and email must both be unused;
// the password is stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, shared.ErrorUsernameAlreadyExists
	} else if !errors.Is(err, shared.ErrorNotFound) {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, shared.ErrorEmailAlreadyExists
	} else if !errors.Is(err, shared.ErrorNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns the account matching the credentials, or
// shared.ErrorInvalidLoginPassword. An unknown username and a wrong password
// are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return nil, shared.ErrorInvalidLoginPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrorInvalidLoginPassword
	}
	return user, nil
}

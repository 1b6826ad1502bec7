package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "mixbook/internal/errors"
	"mixbook/internal/model"
	"mixbook/internal/repository"
)

const bcryptCost = 10

// CredentialService owns password hashing and verification.
type CredentialService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Lookup(ctx context.Context, username string) (*model.User, error)
}

type credentialService struct {
	userRepo repository.UserRepository
}

// NewCredentialService creates a new credential service.
func NewCredentialService(userRepo repository.UserRepository) CredentialService {
	return &credentialService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password. The uniqueness
// key is the username, checked case-sensitively against the raw submitted
// value before insert.
func (s *credentialService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: check username: %v", apperrors.ErrStoreUnavailable, err)
	}

	// bcrypt folds a random per-user salt into the hash.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: create user: %v", apperrors.ErrStoreUnavailable, err)
	}

	return user, nil
}

// Authenticate verifies username and password. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *credentialService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// Lookup fetches a user by exact username.
func (s *credentialService) Lookup(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}

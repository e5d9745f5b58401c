package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrWrongPassword = errors.New("wrong password")
)

type UserRepository interface {
	FindByStudentID(ctx context.Context, studentID string) (domain.User, error)
	PasswordHash(ctx context.Context, studentID string) (string, bool, error)
	DefaultPassword(ctx context.Context, studentID string) (string, bool, error)
	SaveUser(ctx context.Context, user domain.User) error
	SavePasswordHash(ctx context.Context, studentID, hash string) error
}

type AuthService struct {
	repo     UserRepository
	verifier SessionVerifier
}

func NewAuthService(repo UserRepository, verifier SessionVerifier) *AuthService {
	return &AuthService{
		repo:     repo,
		verifier: verifier,
	}
}

// Login authenticates a student id against the password override map first,
// then the seeded roster default.
func (s *AuthService) Login(ctx context.Context, studentID, password string) (domain.User, error) {
	user, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("s.repo.FindByStudentID -> %w", err)
	}

	if err = s.checkPassword(ctx, studentID, password); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile renames the student and optionally changes their password.
// The caller must have completed a credential scan during this session, and a
// password change requires the current password.
func (s *AuthService) UpdateProfile(ctx context.Context, studentID, name, currentPassword, newPassword string) (domain.User, error) {
	if !s.verifier.IsVerified(studentID) {
		return domain.User{}, ErrNotVerified
	}

	user, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("s.repo.FindByStudentID -> %w", err)
	}

	if newPassword != "" {
		if err = s.checkPassword(ctx, studentID, currentPassword); err != nil {
			return domain.User{}, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
		}
		if err = s.repo.SavePasswordHash(ctx, studentID, string(hash)); err != nil {
			return domain.User{}, fmt.Errorf("s.repo.SavePasswordHash -> %w", err)
		}
	}

	user.Name = strings.TrimSpace(name)
	if err = s.repo.SaveUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("s.repo.SaveUser -> %w", err)
	}

	return user, nil
}

func (s *AuthService) checkPassword(ctx context.Context, studentID, password string) error {
	hash, hasOverride, err := s.repo.PasswordHash(ctx, studentID)
	if err != nil {
		return fmt.Errorf("s.repo.PasswordHash -> %w", err)
	}

	if hasOverride {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return ErrWrongPassword
		}
		return nil
	}

	defaultPassword, ok, err := s.repo.DefaultPassword(ctx, studentID)
	if err != nil {
		return fmt.Errorf("s.repo.DefaultPassword -> %w", err)
	}
	if !ok || defaultPassword != password {
		return ErrWrongPassword
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository/dao"
)

var ErrUserNotFound = errors.New("user not found")

type UserDAO interface {
	GetCustomUsers() (map[string]dao.User, error)
	PutCustomUsers(users map[string]dao.User) error
	GetCustomPasswords() (map[string]string, error)
	PutCustomPasswords(passwords map[string]string) error
}

// UserRepository resolves identities against the seeded roster with the
// customUsers override map taking precedence.
type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(d UserDAO) *UserRepository {
	return &UserRepository{
		dao: d,
	}
}

func (r *UserRepository) FindByStudentID(ctx context.Context, studentID string) (domain.User, error) {
	overrides, err := r.dao.GetCustomUsers()
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.GetCustomUsers -> %w", err)
	}

	if u, ok := overrides[studentID]; ok {
		return r.daoToDomain(u), nil
	}
	if u, ok := dao.Roster[studentID]; ok {
		return r.daoToDomain(u), nil
	}

	return domain.User{}, ErrUserNotFound
}

// PasswordHash returns the voter's bcrypt override hash, if one exists.
func (r *UserRepository) PasswordHash(ctx context.Context, studentID string) (string, bool, error) {
	passwords, err := r.dao.GetCustomPasswords()
	if err != nil {
		return "", false, fmt.Errorf("r.dao.GetCustomPasswords -> %w", err)
	}

	hash, ok := passwords[studentID]

	return hash, ok, nil
}

// DefaultPassword returns the seeded roster password for the student.
func (r *UserRepository) DefaultPassword(ctx context.Context, studentID string) (string, bool, error) {
	password, ok := dao.Passwords[studentID]

	return password, ok, nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	overrides, err := r.dao.GetCustomUsers()
	if err != nil {
		return fmt.Errorf("r.dao.GetCustomUsers -> %w", err)
	}

	overrides[user.StudentID] = dao.User{
		StudentID:  user.StudentID,
		Name:       user.Name,
		Department: user.Department,
		Session:    user.Session,
		IsAdmin:    user.IsAdmin,
	}

	if err = r.dao.PutCustomUsers(overrides); err != nil {
		return fmt.Errorf("r.dao.PutCustomUsers -> %w", err)
	}

	return nil
}

func (r *UserRepository) SavePasswordHash(ctx context.Context, studentID, hash string) error {
	passwords, err := r.dao.GetCustomPasswords()
	if err != nil {
		return fmt.Errorf("r.dao.GetCustomPasswords -> %w", err)
	}

	passwords[studentID] = hash

	if err = r.dao.PutCustomPasswords(passwords); err != nil {
		return fmt.Errorf("r.dao.PutCustomPasswords -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		StudentID:  u.StudentID,
		Name:       u.Name,
		Department: u.Department,
		Session:    u.Session,
		IsAdmin:    u.IsAdmin,
	}
}

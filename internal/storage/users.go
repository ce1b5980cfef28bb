package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/auth"
	"github.com/coliride/backend/internal/repository"
)

// RegisterUser hashes the password, assigns an id and persists the user.
// Duplicate emails surface as repository.ErrDuplicateEmail.
func (s *PostgresStorage) RegisterUser(ctx context.Context, user *repository.User, password string) (*repository.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.ID = uuid.NewString()
	user.Password = &hashed
	if user.Role == "" {
		user.Role = repository.RoleSender
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStorage) AuthenticateUser(ctx context.Context, email, password string) (*repository.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == nil || !auth.CheckPassword(*user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id string) (*repository.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *PostgresStorage) ListUsers(ctx context.Context, p repository.ListParams) ([]*repository.User, int, error) {
	users, err := s.users.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UserUpdate is the whitelist of mutable profile fields; nil means "leave
// unchanged".
type UserUpdate struct {
	Email       *string
	Name        *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Address     *string
	Role        *string
	IsVerified  *bool
}

func (s *PostgresStorage) UpdateUser(ctx context.Context, id string, upd UserUpdate) (*repository.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = upd.Name
	}
	if upd.FirstName != nil {
		user.FirstName = upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = upd.LastName
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = upd.PhoneNumber
	}
	if upd.Address != nil {
		user.Address = upd.Address
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.IsVerified != nil {
		user.IsVerified = *upd.IsVerified
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresStorage) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// EnsureAdminUser seeds the configured admin account on startup when it is
// missing. A blank email disables seeding.
func (s *PostgresStorage) EnsureAdminUser(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrObjectNotFound) {
		return err
	}

	name := "Administrator"
	admin := &repository.User{
		Email:      email,
		Name:       &name,
		Role:       repository.RoleAdmin,
		IsVerified: true,
	}
	_, err = s.RegisterUser(ctx, admin, password)
	return err
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campus-helpdesk/internal/auth"
	"github.com/spec-kit/campus-helpdesk/internal/config"
	"github.com/spec-kit/campus-helpdesk/internal/domain"
	"github.com/spec-kit/campus-helpdesk/internal/repository"
	"github.com/spec-kit/campus-helpdesk/pkg/util"
)

// UserService coordinates account workflows: login, registration, password
// reset and admin-side user management.
type UserService struct {
	users repository.UserRepository
	cfg   config.AuthConfig
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, cfg config.AuthConfig) *UserService {
	return &UserService{users: users, cfg: cfg}
}

// Login verifies credentials. Unknown username and wrong password fail the
// same way so the login page leaks nothing about which one was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewDenied("invalid username or password")
		}
		return nil, util.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, util.NewDenied("invalid username or password")
	}
	return user, nil
}

// RegisterStudent creates a self-registered student account.
func (s *UserService) RegisterStudent(ctx context.Context, username, email, name, password string) (*domain.User, error) {
	return s.register(ctx, username, email, name, password, domain.RoleStudent)
}

// RegisterStaff creates a staff account; only reachable from admin pages.
func (s *UserService) RegisterStaff(ctx context.Context, username, email, name, password string) (*domain.User, error) {
	return s.register(ctx, username, email, name, password, domain.RoleStaff)
}

func (s *UserService) register(ctx context.Context, username, email, name, password string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if len(password) < s.cfg.MinPasswordLength {
		return nil, util.NewValidationError("password too short", map[string]any{"min_length": s.cfg.MinPasswordLength})
	}

	available, err := s.IsUsernameAvailable(ctx, username)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, util.NewConflict("username already taken", map[string]any{"username": username})
	}

	available, err = s.IsEmailAvailable(ctx, email)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, util.NewInternalError(err)
	}
	return user, nil
}

// ResetPassword replaces a student's password by email. Staff and admin
// accounts cannot be reset through this flow.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < s.cfg.MinPasswordLength {
		return util.NewValidationError("password too short", map[string]any{"min_length": s.cfg.MinPasswordLength})
	}

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user", map[string]any{"email": email})
		}
		return util.NewInternalError(err)
	}
	if user.Role != domain.RoleStudent {
		return util.NewDenied("password reset is only available for students")
	}

	hash, err := auth.HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return util.NewInternalError(err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return util.NewInternalError(err)
	}
	return nil
}

// FindByID fetches one user.
func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, util.NewInternalError(err)
	}
	return user, nil
}

// ListByRole lists users with the given role.
func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.users.ListByRole(ctx, role)
}

// ListStudents lists all student accounts.
func (s *UserService) ListStudents(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleStudent)
}

// ListStaff lists all staff accounts.
func (s *UserService) ListStaff(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleStaff)
}

// ListAll lists every account.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// UpdateUser changes name and email. Username, password and role are fixed;
// there is no role-change operation.
func (s *UserService) UpdateUser(ctx context.Context, id, name, email string) (*domain.User, error) {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if email != user.Email {
		available, err := s.IsEmailAvailable(ctx, email)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, util.NewConflict("email already registered", map[string]any{"email": email})
		}
	}

	user.Name = strings.TrimSpace(name)
	user.Email = email
	if err := s.users.Update(ctx, user); err != nil {
		return nil, util.NewInternalError(err)
	}
	return user, nil
}

// DeleteUser removes an account.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user", map[string]any{"id": id})
		}
		return util.NewInternalError(err)
	}
	return nil
}

// IsUsernameAvailable reports whether a username is unclaimed.
func (s *UserService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return false, util.NewInternalError(err)
	}
	return !exists, nil
}

// IsEmailAvailable reports whether an email is unclaimed.
func (s *UserService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, util.NewInternalError(err)
	}
	return !exists, nil
}

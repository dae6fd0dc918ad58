package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"vidportal/internal/dependencies/clock"
	"vidportal/internal/model"
	"vidportal/internal/storage"
)

// Seed account identifiers created by Bootstrap
const (
	numSeedAdmins = 2
	numSeedUsers  = 8
)

// Service provides admin-level account management
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	seedPassword string
}

// Config holds configuration for the account service
type Config struct {
	// SeedPassword is the initial password given to bootstrap accounts
	SeedPassword string
}

// DefaultConfig returns default account service configuration
func DefaultConfig() Config {
	return Config{
		SeedPassword: "pass123",
	}
}

// New creates a new account Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SeedPassword == "" {
		cfg.SeedPassword = DefaultConfig().SeedPassword
	}
	return &Service{
		storage:      storage,
		clock:        clock,
		logger:       logger,
		seedPassword: cfg.SeedPassword,
	}
}

// Create adds a new account. The role must be a valid tier and the
// username must not already exist; model.ErrUsernameTaken is surfaced
// verbatim.
func (s *Service) Create(ctx context.Context, username, password string, role model.Role) (*model.Account, error) {
	if username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}
	if !role.Valid() {
		return nil, model.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("account created", slog.String("username", username), slog.String("role", string(role)))
	return account, nil
}

// Update sets a new password and role on the account with the given ID
func (s *Service) Update(ctx context.Context, id int64, newPassword string, newRole model.Role) error {
	if !newRole.Valid() {
		return model.ErrInvalidRole
	}

	account, err := s.storage.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account.PasswordHash = string(hash)
	account.Role = newRole
	account.UpdatedAt = s.clock.Now()
	return s.storage.UpdateAccount(ctx, account)
}

// Delete removes the account with the given ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.storage.DeleteAccount(ctx, id)
}

// List returns all accounts in insertion order
func (s *Service) List(ctx context.Context) ([]*model.Account, error) {
	return s.storage.ListAccounts(ctx)
}

// Bootstrap ensures the seed accounts exist: admin1/admin2 with role
// admin and user1..user8 with role user. Existing accounts are never
// overwritten, so Bootstrap is idempotent across restarts.
func (s *Service) Bootstrap(ctx context.Context) error {
	for i := 1; i <= numSeedAdmins; i++ {
		if err := s.ensureAccount(ctx, fmt.Sprintf("admin%d", i), model.RoleAdmin); err != nil {
			return err
		}
	}
	for i := 1; i <= numSeedUsers; i++ {
		if err := s.ensureAccount(ctx, fmt.Sprintf("user%d", i), model.RoleUser); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) ensureAccount(ctx context.Context, username string, role model.Role) error {
	_, err := s.storage.GetAccountByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return err
	}

	_, err = s.Create(ctx, username, s.seedPassword, role)
	if errors.Is(err, model.ErrUsernameTaken) {
		// Lost a race with another bootstrap; the account exists
		return nil
	}
	return err
}

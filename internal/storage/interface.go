package storage

import (
	"context"

	"vidportal/internal/model"
)

// Storage defines the interface for account persistence
type Storage interface {
	// CreateAccount inserts a new account, assigning its ID.
	// Returns model.ErrUsernameTaken if the username is already present.
	CreateAccount(ctx context.Context, account *model.Account) error

	// GetAccount returns the account with the given ID
	GetAccount(ctx context.Context, id int64) (*model.Account, error)

	// GetAccountByUsername returns the account with the given username (case-sensitive)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// UpdateAccount updates an existing account by ID.
	// Username uniqueness is not re-validated on update.
	UpdateAccount(ctx context.Context, account *model.Account) error

	// DeleteAccount removes the account with the given ID (no-op if absent)
	DeleteAccount(ctx context.Context, id int64) error

	// ListAccounts returns all accounts in insertion (ID) order
	ListAccounts(ctx context.Context) ([]*model.Account, error)

	// Close releases any underlying resources
	Close() error
}

package services

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetVisibleAccount retrieves an account by id; INACTIVE accounts are reported as not found.
	GetVisibleAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// GetRawAccount retrieves an account by id regardless of status.
	GetRawAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts lists accounts newest first, optionally filtered by status.
	ListAccounts(ctx context.Context, status *domain.AccountStatus) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens a new ACTIVE account.
	CreateAccount(ctx context.Context, holder string, initialBalance domain.Money) (*domain.Account, error)

	// ApplyUpdate dispatches a holder or status update.
	ApplyUpdate(ctx context.Context, accountID int64, update domain.AccountUpdate) (*domain.Account, error)

	// UpdateHolder renames the holder of a visible account.
	UpdateHolder(ctx context.Context, accountID int64, holder string) (*domain.Account, error)

	// UpdateStatus activates or deactivates an account.
	UpdateStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error)
}

// AccountBalanceSvc defines balance mutation operations
type AccountBalanceSvc interface {
	// AdjustBalance credits or debits an account.
	AdjustBalance(ctx context.Context, accountID int64, amount domain.Money, direction domain.BalanceDirection) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountBalanceSvc
}

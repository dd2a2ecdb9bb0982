package repositories

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindVisibleAccount returns the account unless it is missing or INACTIVE.
	FindVisibleAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindRawAccount returns the account regardless of its status.
	FindRawAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccounts returns a point-in-time snapshot, newest first. A nil filter lists every status.
	ListAccounts(ctx context.Context, status *domain.AccountStatus) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// CreateAccount allocates the next id and stores a new ACTIVE account.
	CreateAccount(ctx context.Context, holder string, initialBalance domain.Money) (*domain.Account, error)

	// UpdateHolder renames the holder of a visible account.
	UpdateHolder(ctx context.Context, accountID int64, holder string) (*domain.Account, error)

	// UpdateStatus changes the status of any existing account, including inactive ones.
	UpdateStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error)

	// AdjustBalance credits or debits any existing account.
	AdjustBalance(ctx context.Context, accountID int64, amount domain.Money, direction domain.BalanceDirection) (*domain.Account, error)
}

// AccountTransactionSupport defines operations that support multi-account updates
type AccountTransactionSupport interface {
	// ModifyAccounts locks the existing accounts among accountIDs in ascending id order and calls fn
	// with working copies keyed by id; ids that do not exist are absent from the map.
	// The copies are committed only when fn returns nil.
	ModifyAccounts(ctx context.Context, accountIDs []int64, fn func(accounts map[int64]*domain.Account) error) error
}

// AccountStore combines all account-related store interfaces
type AccountStore interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
)

// accountRecord guards one stored account. All reads and writes of account go through mu.
type accountRecord struct {
	mu      sync.Mutex
	account domain.Account
}

// AccountStore keeps accounts in memory. The table lock only protects the index;
// balance and status changes serialize on the per-account lock, so operations
// on different accounts do not block each other.
type AccountStore struct {
	mu      sync.RWMutex
	records map[int64]*accountRecord
	ordered []*accountRecord // insertion order, which is also ascending id order
	nextID  atomic.Int64
	now     func() time.Time
}

// AccountStoreOption configures an AccountStore.
type AccountStoreOption func(*AccountStore)

// WithAccountClock overrides the clock used for CreatedAt.
func WithAccountClock(now func() time.Time) AccountStoreOption {
	return func(s *AccountStore) {
		s.now = now
	}
}

// NewAccountStore creates an empty account store.
func NewAccountStore(options ...AccountStoreOption) *AccountStore {
	s := &AccountStore{
		records: make(map[int64]*accountRecord),
		now:     time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Ensure AccountStore implements portsrepo.AccountStore
var _ portsrepo.AccountStore = (*AccountStore)(nil)

func accountNotFound(accountID int64) error {
	return fmt.Errorf("%w: could not find account for id [%d]", apperrors.ErrAccountNotFound, accountID)
}

func (s *AccountStore) lookup(accountID int64) (*accountRecord, error) {
	s.mu.RLock()
	rec, ok := s.records[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, accountNotFound(accountID)
	}
	return rec, nil
}

// CreateAccount allocates the next id and stores a new ACTIVE account.
// The id is taken while the index is write-locked, so id order matches insertion order.
func (s *AccountStore) CreateAccount(ctx context.Context, holder string, initialBalance domain.Money) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &accountRecord{
		account: domain.Account{
			AccountID: s.nextID.Add(1),
			Holder:    holder,
			Balance:   initialBalance,
			Status:    domain.Active,
			CreatedAt: s.now(),
		},
	}
	s.records[rec.account.AccountID] = rec
	s.ordered = append(s.ordered, rec)

	account := rec.account
	return &account, nil
}

// FindRawAccount returns a copy of the account regardless of status.
func (s *AccountStore) FindRawAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	rec, err := s.lookup(accountID)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	account := rec.account
	rec.mu.Unlock()
	return &account, nil
}

// FindVisibleAccount returns a copy of the account, treating INACTIVE accounts as absent.
func (s *AccountStore) FindVisibleAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.FindRawAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, fmt.Errorf("%w: account id [%d] is INACTIVE", apperrors.ErrAccountNotFound, accountID)
	}
	return account, nil
}

// ListAccounts copies every account while holding all record locks (taken in ascending id
// order), so the result reflects a single instant even with transfers in flight.
func (s *AccountStore) ListAccounts(ctx context.Context, status *domain.AccountStatus) ([]domain.Account, error) {
	s.mu.RLock()
	records := slices.Clone(s.ordered)
	s.mu.RUnlock()

	for _, rec := range records {
		rec.mu.Lock()
	}
	accounts := make([]domain.Account, 0, len(records))
	for _, rec := range records {
		if status == nil || rec.account.Status == *status {
			accounts = append(accounts, rec.account)
		}
	}
	for i := len(records) - 1; i >= 0; i-- {
		records[i].mu.Unlock()
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

// UpdateHolder renames the holder of a visible account. Setting the current holder is a no-op.
func (s *AccountStore) UpdateHolder(ctx context.Context, accountID int64, holder string) (*domain.Account, error) {
	rec, err := s.lookup(accountID)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if !rec.account.IsActive() {
		return nil, fmt.Errorf("%w: account id [%d] is INACTIVE", apperrors.ErrAccountNotFound, accountID)
	}
	if rec.account.Holder != holder {
		rec.account.Holder = holder
	}
	account := rec.account
	return &account, nil
}

// UpdateStatus changes the status of any existing account, so inactive accounts can be reactivated.
func (s *AccountStore) UpdateStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, string(status))
	}
	rec, err := s.lookup(accountID)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.account.Status != status {
		rec.account.Status = status
	}
	account := rec.account
	return &account, nil
}

// AdjustBalance credits or debits any existing account, inactive ones included.
func (s *AccountStore) AdjustBalance(ctx context.Context, accountID int64, amount domain.Money, direction domain.BalanceDirection) (*domain.Account, error) {
	rec, err := s.lookup(accountID)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	account := rec.account
	if err := account.Apply(amount, direction); err != nil {
		return nil, fmt.Errorf("account id [%d]: %w", accountID, err)
	}
	rec.account = account
	return &account, nil
}

// ModifyAccounts locks the existing accounts among accountIDs in ascending id order,
// hands fn working copies and commits them only when fn succeeds.
// The fixed lock order is what keeps opposite-direction transfers from deadlocking.
func (s *AccountStore) ModifyAccounts(ctx context.Context, accountIDs []int64, fn func(accounts map[int64]*domain.Account) error) error {
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	s.mu.RLock()
	records := make([]*accountRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.records[id]; ok {
			records = append(records, rec)
		}
	}
	s.mu.RUnlock()

	for _, rec := range records {
		rec.mu.Lock()
	}
	defer func() {
		for i := len(records) - 1; i >= 0; i-- {
			records[i].mu.Unlock()
		}
	}()

	working := make(map[int64]*domain.Account, len(records))
	for _, rec := range records {
		account := rec.account
		working[account.AccountID] = &account
	}

	if err := fn(working); err != nil {
		return err
	}

	for _, rec := range records {
		updated := working[rec.account.AccountID]
		if updated == nil {
			continue
		}
		// identity fields are not writable through a working copy
		updated.AccountID = rec.account.AccountID
		updated.CreatedAt = rec.account.CreatedAt
		rec.account = *updated
	}
	return nil
}

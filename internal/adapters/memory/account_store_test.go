package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_transfer_app/internal/adapters/memory"
	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// steppingClock returns a clock that advances one second per call.
func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func TestAccountStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()

	created, err := store.CreateAccount(ctx, "Jane Doe", domain.MustMoney("250", domain.EUR))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.AccountID)
	assert.Equal(t, domain.Active, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := store.FindVisibleAccount(ctx, created.AccountID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)

	// returned values are copies
	found.Holder = "Mallory"
	again, err := store.FindRawAccount(ctx, created.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.Holder)
}

func TestAccountStore_FindUnknown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()

	_, err := store.FindRawAccount(ctx, 42)
	require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "could not find account for id [42]")
}

func TestAccountStore_InactiveVisibility(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc, err := store.CreateAccount(ctx, "Jane", domain.MustMoney("10", domain.EUR))
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, acc.AccountID, domain.Inactive)
	require.NoError(t, err)

	_, err = store.FindVisibleAccount(ctx, acc.AccountID)
	require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "is INACTIVE")

	raw, err := store.FindRawAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.Equal(t, domain.Inactive, raw.Status)

	_, err = store.UpdateHolder(ctx, acc.AccountID, "John")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)

	// balance adjustments and reactivation bypass the visibility filter
	adjusted, err := store.AdjustBalance(ctx, acc.AccountID, domain.MustMoney("5", domain.EUR), domain.Credit)
	require.NoError(t, err)
	assert.True(t, adjusted.Balance.Equal(domain.MustMoney("15", domain.EUR)))

	reactivated, err := store.UpdateStatus(ctx, acc.AccountID, domain.Active)
	require.NoError(t, err)
	assert.True(t, reactivated.IsActive())
}

func TestAccountStore_UpdateStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc, err := store.CreateAccount(ctx, "Jane", domain.MustMoney("10", domain.EUR))
	require.NoError(t, err)

	_, err = store.UpdateStatus(ctx, acc.AccountID, domain.AccountStatus("FROZEN"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccountStore_AdjustBalanceFailureLeavesBalance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc, err := store.CreateAccount(ctx, "Jane", domain.MustMoney("10", domain.EUR))
	require.NoError(t, err)

	_, err = store.AdjustBalance(ctx, acc.AccountID, domain.MustMoney("10.01", domain.EUR), domain.Debit)
	assert.ErrorIs(t, err, apperrors.ErrNegativeBalance)

	_, err = store.AdjustBalance(ctx, acc.AccountID, domain.MustMoney("1", domain.USD), domain.Credit)
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	current, err := store.FindRawAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.True(t, current.Balance.Equal(domain.MustMoney("10", domain.EUR)))
}

func TestAccountStore_ListAccountsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore(memory.WithAccountClock(steppingClock()))

	for _, holder := range []string{"first", "second", "third"} {
		_, err := store.CreateAccount(ctx, holder, domain.MustMoney("1", domain.EUR))
		require.NoError(t, err)
	}
	_, err := store.UpdateStatus(ctx, 2, domain.Inactive)
	require.NoError(t, err)

	all, err := store.ListAccounts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].Holder, all[1].Holder, all[2].Holder})

	active := domain.Active
	onlyActive, err := store.ListAccounts(ctx, &active)
	require.NoError(t, err)
	require.Len(t, onlyActive, 2)
	assert.Equal(t, int64(3), onlyActive[0].AccountID)
	assert.Equal(t, int64(1), onlyActive[1].AccountID)

	inactive := domain.Inactive
	onlyInactive, err := store.ListAccounts(ctx, &inactive)
	require.NoError(t, err)
	require.Len(t, onlyInactive, 1)
	assert.Equal(t, int64(2), onlyInactive[0].AccountID)
}

func TestAccountStore_ListAccountsEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()

	all, err := store.ListAccounts(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = store.CreateAccount(ctx, "Jane", domain.MustMoney("1", domain.EUR))
	require.NoError(t, err)
	inactive := domain.Inactive
	none, err := store.ListAccounts(ctx, &inactive)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAccountStore_ListAccountsTiesKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	instant := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := memory.NewAccountStore(memory.WithAccountClock(func() time.Time { return instant }))

	for _, holder := range []string{"first", "second", "third"} {
		_, err := store.CreateAccount(ctx, holder, domain.MustMoney("1", domain.EUR))
		require.NoError(t, err)
	}

	for i := 0; i < 5; i++ {
		all, err := store.ListAccounts(ctx, nil)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].AccountID, all[1].AccountID, all[2].AccountID})
	}
}

func TestAccountStore_UpdatesToCurrentValueAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc, err := store.CreateAccount(ctx, "Jane", domain.MustMoney("10", domain.EUR))
	require.NoError(t, err)

	before, err := store.FindRawAccount(ctx, acc.AccountID)
	require.NoError(t, err)

	renamed, err := store.UpdateHolder(ctx, acc.AccountID, "Jane")
	require.NoError(t, err)
	assert.Equal(t, *before, *renamed)

	restated, err := store.UpdateStatus(ctx, acc.AccountID, domain.Active)
	require.NoError(t, err)
	assert.Equal(t, *before, *restated)

	after, err := store.FindRawAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
}

func TestAccountStore_ConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()

	const n = 200
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc, err := store.CreateAccount(ctx, "holder", domain.MustMoney("1", domain.EUR))
			if assert.NoError(t, err) {
				ids <- acc.AccountID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestAccountStore_ModifyAccountsCommitsOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	a, err := store.CreateAccount(ctx, "a", domain.MustMoney("100", domain.EUR))
	require.NoError(t, err)
	b, err := store.CreateAccount(ctx, "b", domain.MustMoney("0", domain.EUR))
	require.NoError(t, err)

	err = store.ModifyAccounts(ctx, []int64{b.AccountID, a.AccountID, 99}, func(accounts map[int64]*domain.Account) error {
		assert.Len(t, accounts, 2)
		require.NoError(t, accounts[a.AccountID].Apply(domain.MustMoney("30", domain.EUR), domain.Debit))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	unchanged, err := store.FindRawAccount(ctx, a.AccountID)
	require.NoError(t, err)
	assert.True(t, unchanged.Balance.Equal(domain.MustMoney("100", domain.EUR)))

	err = store.ModifyAccounts(ctx, []int64{a.AccountID, b.AccountID}, func(accounts map[int64]*domain.Account) error {
		if err := accounts[a.AccountID].Apply(domain.MustMoney("30", domain.EUR), domain.Debit); err != nil {
			return err
		}
		accounts[b.AccountID].AccountID = 1000
		return accounts[b.AccountID].Apply(domain.MustMoney("30", domain.EUR), domain.Credit)
	})
	require.NoError(t, err)

	gotA, err := store.FindRawAccount(ctx, a.AccountID)
	require.NoError(t, err)
	gotB, err := store.FindRawAccount(ctx, b.AccountID)
	require.NoError(t, err)
	assert.True(t, gotA.Balance.Equal(domain.MustMoney("70", domain.EUR)))
	assert.True(t, gotB.Balance.Equal(domain.MustMoney("30", domain.EUR)))
	assert.Equal(t, b.AccountID, gotB.AccountID)
}

func TestAccountStore_ListAccountsSeesConsistentTotal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	a, err := store.CreateAccount(ctx, "a", domain.MustMoney("500", domain.EUR))
	require.NoError(t, err)
	b, err := store.CreateAccount(ctx, "b", domain.MustMoney("500", domain.EUR))
	require.NoError(t, err)
	total := domain.MustMoney("1000", domain.EUR)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			from, to := a.AccountID, b.AccountID
			if i%2 == 1 {
				from, to = to, from
			}
			_ = store.ModifyAccounts(ctx, []int64{from, to}, func(accounts map[int64]*domain.Account) error {
				if err := accounts[from].Apply(domain.MustMoney("1", domain.EUR), domain.Debit); err != nil {
					return err
				}
				return accounts[to].Apply(domain.MustMoney("1", domain.EUR), domain.Credit)
			})
		}
		close(done)
	}()

	for {
		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
		accounts, err := store.ListAccounts(ctx, nil)
		require.NoError(t, err)
		sum := domain.MustMoney("0", domain.EUR)
		for _, acc := range accounts {
			sum, err = sum.Add(acc.Balance)
			require.NoError(t, err)
		}
		require.True(t, sum.Equal(total), "snapshot total %s", sum)
	}
}

func TestAccountStore_ConcurrentAdjustmentsLoseNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc, err := store.CreateAccount(ctx, "Jane", domain.MustMoney("1000", domain.EUR))
	require.NoError(t, err)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := store.AdjustBalance(ctx, acc.AccountID, domain.MustMoney("2.50", domain.EUR), domain.Credit)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := store.AdjustBalance(ctx, acc.AccountID, domain.MustMoney("1.25", domain.EUR), domain.Debit)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := store.FindRawAccount(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.True(t, final.Balance.Equal(domain.MustMoney("1125", domain.EUR)), "balance %s", final.Balance)
}

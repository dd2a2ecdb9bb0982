package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
)

// AccountStatus controls whether an account is visible to id lookups.
type AccountStatus string

const (
	Active   AccountStatus = "ACTIVE"
	Inactive AccountStatus = "INACTIVE"
)

// IsValid reports whether the status is one of the known values.
func (s AccountStatus) IsValid() bool {
	return s == Active || s == Inactive
}

// ParseAccountStatus resolves a status name case-insensitively.
func ParseAccountStatus(value string) (AccountStatus, error) {
	s := AccountStatus(strings.ToUpper(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: status can only be %s or %s", apperrors.ErrValidation, Active, Inactive)
	}
	return s, nil
}

// BalanceDirection selects between adding to and taking from a balance.
type BalanceDirection string

const (
	Credit BalanceDirection = "CREDIT"
	Debit  BalanceDirection = "DEBIT"
)

// Account represents a single-currency balance owned by a holder.
type Account struct {
	AccountID int64         `json:"accountId"` // assigned once, never reused
	Holder    string        `json:"accountHolder"`
	Balance   Money         `json:"balance"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"created"`
}

// IsActive is a convenience for Status == Active.
func (a Account) IsActive() bool {
	return a.Status == Active
}

// Apply adjusts the balance in the given direction. A debit that would leave
// the balance below zero fails with ErrNegativeBalance and leaves a untouched.
func (a *Account) Apply(amount Money, direction BalanceDirection) error {
	if !a.Balance.SameCurrency(amount) {
		return fmt.Errorf("%w: currency is not matching for %s and %s",
			apperrors.ErrCurrencyMismatch, amount.Currency, a.Balance.Currency)
	}

	switch direction {
	case Credit:
		next, err := a.Balance.Add(amount)
		if err != nil {
			return err
		}
		a.Balance = next
	case Debit:
		next, err := a.Balance.Sub(amount)
		if err != nil {
			return err
		}
		if next.IsNegative() {
			return fmt.Errorf("%w: current balance %s", apperrors.ErrNegativeBalance, a.Balance)
		}
		a.Balance = next
	default:
		return fmt.Errorf("%w: unknown balance direction %q", apperrors.ErrValidation, string(direction))
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface on top of an AccountStore.
type accountService struct {
	BaseService
	accountStore portsrepo.AccountStore
}

// NewAccountService creates a new account service.
func NewAccountService(store portsrepo.AccountStore) portssvc.AccountSvcFacade {
	return &accountService{accountStore: store}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// logLookupFailure keeps not-found at debug level; anything else is unexpected.
func (s *accountService) logLookupFailure(ctx context.Context, err error, msg string, accountID int64) {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, msg, slog.Int64("account_id", accountID), slog.String("error", err.Error()))
		return
	}
	s.LogError(ctx, err, msg, slog.Int64("account_id", accountID))
}

func (s *accountService) CreateAccount(ctx context.Context, holder string, initialBalance domain.Money) (*domain.Account, error) {
	account, err := s.accountStore.CreateAccount(ctx, holder, initialBalance)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("holder", holder))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("account_id", account.AccountID),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

func (s *accountService) GetVisibleAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountStore.FindVisibleAccount(ctx, accountID)
	if err != nil {
		s.logLookupFailure(ctx, err, "Visible account lookup failed", accountID)
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetRawAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountStore.FindRawAccount(ctx, accountID)
	if err != nil {
		s.logLookupFailure(ctx, err, "Account lookup failed", accountID)
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, status *domain.AccountStatus) ([]domain.Account, error) {
	accounts, err := s.accountStore.ListAccounts(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ApplyUpdate dispatches on the update kind; each kind keeps its own lookup policy.
func (s *accountService) ApplyUpdate(ctx context.Context, accountID int64, update domain.AccountUpdate) (*domain.Account, error) {
	switch update.Kind {
	case domain.UpdateHolder:
		return s.UpdateHolder(ctx, accountID, update.Holder)
	case domain.UpdateStatus:
		return s.UpdateStatus(ctx, accountID, update.Status)
	default:
		err := fmt.Errorf("%w: unknown account update kind %q", apperrors.ErrValidation, string(update.Kind))
		s.LogWarn(ctx, err, "Rejected account update", slog.Int64("account_id", accountID))
		return nil, err
	}
}

func (s *accountService) UpdateHolder(ctx context.Context, accountID int64, holder string) (*domain.Account, error) {
	account, err := s.accountStore.UpdateHolder(ctx, accountID, holder)
	if err != nil {
		s.logLookupFailure(ctx, err, "Failed to update account holder", accountID)
		return nil, err
	}

	s.LogInfo(ctx, "Account holder updated", slog.Int64("account_id", accountID))
	return account, nil
}

func (s *accountService) UpdateStatus(ctx context.Context, accountID int64, status domain.AccountStatus) (*domain.Account, error) {
	account, err := s.accountStore.UpdateStatus(ctx, accountID, status)
	if err != nil {
		s.logLookupFailure(ctx, err, "Failed to update account status", accountID)
		return nil, err
	}

	s.LogInfo(ctx, "Account status updated",
		slog.Int64("account_id", accountID),
		slog.String("status", string(account.Status)))
	return account, nil
}

func (s *accountService) AdjustBalance(ctx context.Context, accountID int64, amount domain.Money, direction domain.BalanceDirection) (*domain.Account, error) {
	account, err := s.accountStore.AdjustBalance(ctx, accountID, amount, direction)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCurrencyMismatch), errors.Is(err, apperrors.ErrNegativeBalance):
			s.LogWarn(ctx, err, "Balance adjustment rejected",
				slog.Int64("account_id", accountID),
				slog.String("direction", string(direction)),
				slog.String("amount", amount.String()))
		default:
			s.logLookupFailure(ctx, err, "Failed to adjust balance", accountID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account balance adjusted",
		slog.Int64("account_id", accountID),
		slog.String("direction", string(direction)),
		slog.String("amount", amount.String()),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

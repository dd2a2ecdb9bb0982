package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// transferCheck inspects a request against the locked accounts. A missing id is absent from accounts.
type transferCheck func(req domain.TransferRequest, accounts map[int64]*domain.Account) error

// transferChecks run in this order and stop at the first failure; the order decides
// which error a caller sees when several checks would fail.
var transferChecks = []transferCheck{
	checkDistinctAccounts,
	checkSourceExists,
	checkDestinationExists,
	checkDestinationCurrency,
	checkSufficientFunds,
}

func checkDistinctAccounts(req domain.TransferRequest, _ map[int64]*domain.Account) error {
	if req.SourceAccountID == req.DestinationAccountID {
		return fmt.Errorf("%w: source and destination account must be different", apperrors.ErrInvalidTransfer)
	}
	return nil
}

func checkSourceExists(req domain.TransferRequest, accounts map[int64]*domain.Account) error {
	if _, ok := accounts[req.SourceAccountID]; !ok {
		return fmt.Errorf("%w: source account [%d] does not exist", apperrors.ErrAccountNotFound, req.SourceAccountID)
	}
	return nil
}

func checkDestinationExists(req domain.TransferRequest, accounts map[int64]*domain.Account) error {
	if _, ok := accounts[req.DestinationAccountID]; !ok {
		return fmt.Errorf("%w: destination account [%d] does not exist", apperrors.ErrAccountNotFound, req.DestinationAccountID)
	}
	return nil
}

func checkDestinationCurrency(req domain.TransferRequest, accounts map[int64]*domain.Account) error {
	destination := accounts[req.DestinationAccountID]
	if !destination.Balance.SameCurrency(req.Amount) {
		return fmt.Errorf("%w: destination account holds %s, transfer is in %s",
			apperrors.ErrCurrencyMismatch, destination.Balance.Currency, req.Amount.Currency)
	}
	return nil
}

func checkSufficientFunds(req domain.TransferRequest, accounts map[int64]*domain.Account) error {
	source := accounts[req.SourceAccountID]
	if source.Balance.Amount.Sub(req.Amount.Amount).IsNegative() {
		return fmt.Errorf("%w: source account [%d] balance is %s",
			apperrors.ErrInsufficientFunds, req.SourceAccountID, source.Balance)
	}
	return nil
}

// transferService is the transfer engine: validation, the paired balance update and the ledger append.
type transferService struct {
	BaseService
	accountStore portsrepo.AccountStore
	ledger       portsrepo.TransferLedger
	newID        func() string
}

// TransferServiceOption is a functional option for configuring the transfer service
type TransferServiceOption func(*transferService)

// WithTransferIDGenerator overrides how transfer ids are generated.
func WithTransferIDGenerator(newID func() string) TransferServiceOption {
	return func(s *transferService) {
		s.newID = newID
	}
}

// NewTransferService creates the transfer engine over the given store and ledger.
func NewTransferService(store portsrepo.AccountStore, ledger portsrepo.TransferLedger, options ...TransferServiceOption) portssvc.TransferSvcFacade {
	svc := &transferService{
		accountStore: store,
		ledger:       ledger,
		newID:        uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transferService implements the TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// Transfer runs the checks and the debit/credit pair while both accounts are locked, and
// appends the record before the locks are released. Any failure leaves balances and the ledger untouched.
func (s *transferService) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.Transfer, error) {
	logger := s.GetLogger(ctx).With(
		slog.Int64("source_account_id", req.SourceAccountID),
		slog.Int64("destination_account_id", req.DestinationAccountID),
		slog.String("amount", req.Amount.String()),
	)

	var committed domain.Transfer
	err := s.accountStore.ModifyAccounts(ctx, []int64{req.SourceAccountID, req.DestinationAccountID},
		func(accounts map[int64]*domain.Account) error {
			for _, check := range transferChecks {
				if err := check(req, accounts); err != nil {
					return err
				}
			}

			// The source currency is not part of the checks; a mismatch surfaces here as ErrCurrencyMismatch.
			if err := accounts[req.SourceAccountID].Apply(req.Amount, domain.Debit); err != nil {
				return fmt.Errorf("debit source account [%d]: %w", req.SourceAccountID, err)
			}
			if err := accounts[req.DestinationAccountID].Apply(req.Amount, domain.Credit); err != nil {
				return fmt.Errorf("credit destination account [%d]: %w", req.DestinationAccountID, err)
			}

			record, err := s.ledger.AppendTransfer(ctx, domain.Transfer{
				TransferID:           s.newID(),
				SourceAccountID:      req.SourceAccountID,
				DestinationAccountID: req.DestinationAccountID,
				Amount:               req.Amount,
				Description:          req.Description,
			})
			if err != nil {
				return fmt.Errorf("failed to append transfer: %w", err)
			}
			committed = record
			return nil
		})
	if err != nil {
		if isTransferRejection(err) {
			logger.Warn("Transfer rejected", slog.String("error", err.Error()))
		} else {
			logger.Error("Transfer failed", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Transfer committed", slog.String("transfer_id", committed.TransferID))
	return &committed, nil
}

func isTransferRejection(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidTransfer) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrCurrencyMismatch) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) ||
		errors.Is(err, apperrors.ErrNegativeBalance)
}

// ListAllTransfers returns every committed transfer, newest first.
func (s *transferService) ListAllTransfers(ctx context.Context) ([]domain.Transfer, error) {
	transfers, err := s.ledger.ListTransfers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers")
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	s.LogDebug(ctx, "Transfers listed successfully", slog.Int("count", len(transfers)))
	return transfers, nil
}

// ListTransfersByAccount only matches the source side; received transfers are not listed.
func (s *transferService) ListTransfersByAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	transfers, err := s.ledger.ListTransfersBySource(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transfers for account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to list transfers for account %d: %w", accountID, err)
	}
	s.LogDebug(ctx, "Transfers listed successfully",
		slog.Int64("account_id", accountID),
		slog.Int("count", len(transfers)))
	return transfers, nil
}

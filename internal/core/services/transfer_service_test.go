package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_transfer_app/internal/adapters/memory"
	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/core/services"
)

type TransferServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.AccountStore
	ledger   *memory.TransferLedger
	service  portssvc.TransferSvcFacade
	accounts portssvc.AccountSvcFacade
	idSeq    int
	idMu     sync.Mutex
}

func (suite *TransferServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewAccountStore()
	suite.ledger = memory.NewTransferLedger()
	suite.idSeq = 0
	suite.service = services.NewTransferService(suite.store, suite.ledger,
		services.WithTransferIDGenerator(func() string {
			suite.idMu.Lock()
			defer suite.idMu.Unlock()
			suite.idSeq++
			return fmt.Sprintf("tr-%d", suite.idSeq)
		}))
	suite.accounts = services.NewAccountService(suite.store)
}

func (suite *TransferServiceTestSuite) open(holder, amount string, currency domain.Currency) int64 {
	acc, err := suite.accounts.CreateAccount(suite.ctx, holder, domain.MustMoney(amount, currency))
	suite.Require().NoError(err)
	return acc.AccountID
}

func (suite *TransferServiceTestSuite) balance(accountID int64) domain.Money {
	acc, err := suite.accounts.GetRawAccount(suite.ctx, accountID)
	suite.Require().NoError(err)
	return acc.Balance
}

func (suite *TransferServiceTestSuite) request(from, to int64, amount string, currency domain.Currency) domain.TransferRequest {
	return domain.TransferRequest{
		SourceAccountID:      from,
		DestinationAccountID: to,
		Amount:               domain.MustMoney(amount, currency),
		Description:          "test",
	}
}

func (suite *TransferServiceTestSuite) TestTransfer_Success() {
	a := suite.open("a", "250", domain.EUR)
	b := suite.open("b", "0", domain.EUR)

	transfer, err := suite.service.Transfer(suite.ctx, suite.request(a, b, "100", domain.EUR))

	suite.Require().NoError(err)
	suite.Require().NotNil(transfer)
	suite.Equal("tr-1", transfer.TransferID)
	suite.Equal(a, transfer.SourceAccountID)
	suite.Equal(b, transfer.DestinationAccountID)
	suite.Equal("test", transfer.Description)
	suite.False(transfer.TransferDate.IsZero())
	suite.True(suite.balance(a).Equal(domain.MustMoney("150", domain.EUR)))
	suite.True(suite.balance(b).Equal(domain.MustMoney("100", domain.EUR)))

	listed, err := suite.service.ListAllTransfers(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(*transfer, listed[0])
}

func (suite *TransferServiceTestSuite) TestTransfer_Scenarios() {
	a := suite.open("a", "300", domain.EUR)
	b := suite.open("b", "100", domain.EUR)

	transfer, err := suite.service.Transfer(suite.ctx, suite.request(a, b, "50", domain.EUR))
	suite.Require().NoError(err)
	suite.True(transfer.Amount.Equal(domain.MustMoney("50", domain.EUR)))
	suite.True(suite.balance(a).Equal(domain.MustMoney("250", domain.EUR)))
	suite.True(suite.balance(b).Equal(domain.MustMoney("150", domain.EUR)))

	_, err = suite.service.Transfer(suite.ctx, suite.request(a, b, "500", domain.EUR))
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.True(suite.balance(a).Equal(domain.MustMoney("250", domain.EUR)))
	suite.True(suite.balance(b).Equal(domain.MustMoney("150", domain.EUR)))

	listed, err := suite.service.ListAllTransfers(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(listed, 1)
}

func (suite *TransferServiceTestSuite) TestTransfer_ExactBalanceAndZeroAmount() {
	a := suite.open("a", "100", domain.EUR)
	b := suite.open("b", "0", domain.EUR)

	_, err := suite.service.Transfer(suite.ctx, suite.request(a, b, "100", domain.EUR))
	suite.Require().NoError(err)
	suite.True(suite.balance(a).Equal(domain.MustMoney("0", domain.EUR)))

	_, err = suite.service.Transfer(suite.ctx, suite.request(a, b, "0", domain.EUR))
	suite.Require().NoError(err)
	suite.True(suite.balance(b).Equal(domain.MustMoney("100", domain.EUR)))
}

func (suite *TransferServiceTestSuite) TestTransfer_Rejections() {
	eur := suite.open("eur", "100", domain.EUR)
	eur2 := suite.open("eur2", "100", domain.EUR)
	usd := suite.open("usd", "100", domain.USD)

	tests := []struct {
		name    string
		req     domain.TransferRequest
		wantErr error
	}{
		{name: "same account", req: suite.request(eur, eur, "1", domain.EUR), wantErr: apperrors.ErrInvalidTransfer},
		{name: "unknown source", req: suite.request(99, eur, "1", domain.EUR), wantErr: apperrors.ErrAccountNotFound},
		{name: "unknown destination", req: suite.request(eur, 99, "1", domain.EUR), wantErr: apperrors.ErrAccountNotFound},
		{name: "destination currency", req: suite.request(eur, usd, "1", domain.EUR), wantErr: apperrors.ErrCurrencyMismatch},
		{name: "source currency", req: suite.request(usd, eur, "1", domain.EUR), wantErr: apperrors.ErrCurrencyMismatch},
		{name: "insufficient funds", req: suite.request(eur, eur2, "100.01", domain.EUR), wantErr: apperrors.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transfer, err := suite.service.Transfer(suite.ctx, tt.req)
			suite.Nil(transfer)
			suite.ErrorIs(err, tt.wantErr)
		})
	}

	suite.True(suite.balance(eur).Equal(domain.MustMoney("100", domain.EUR)))
	suite.True(suite.balance(eur2).Equal(domain.MustMoney("100", domain.EUR)))
	suite.True(suite.balance(usd).Equal(domain.MustMoney("100", domain.USD)))
	listed, err := suite.service.ListAllTransfers(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(listed)
}

func (suite *TransferServiceTestSuite) TestTransfer_CheckOrder() {
	usd := suite.open("usd", "0", domain.USD)

	// same account wins over a missing account
	_, err := suite.service.Transfer(suite.ctx, suite.request(99, 99, "1", domain.EUR))
	suite.ErrorIs(err, apperrors.ErrInvalidTransfer)

	// missing source wins over missing destination
	_, err = suite.service.Transfer(suite.ctx, suite.request(98, 99, "1", domain.EUR))
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.Contains(err.Error(), "source account [98]")

	// destination currency wins over insufficient funds
	eur := suite.open("eur", "0", domain.EUR)
	_, err = suite.service.Transfer(suite.ctx, suite.request(eur, usd, "5", domain.EUR))
	suite.ErrorIs(err, apperrors.ErrCurrencyMismatch)
}

func (suite *TransferServiceTestSuite) TestTransfer_InactiveAccountsParticipate() {
	a := suite.open("a", "50", domain.EUR)
	b := suite.open("b", "0", domain.EUR)
	_, err := suite.accounts.UpdateStatus(suite.ctx, b, domain.Inactive)
	suite.Require().NoError(err)

	_, err = suite.service.Transfer(suite.ctx, suite.request(a, b, "20", domain.EUR))
	suite.Require().NoError(err)
	suite.True(suite.balance(b).Equal(domain.MustMoney("20", domain.EUR)))
}

func (suite *TransferServiceTestSuite) TestListTransfersByAccount_SourceOnly() {
	a := suite.open("a", "100", domain.EUR)
	b := suite.open("b", "100", domain.EUR)

	_, err := suite.service.Transfer(suite.ctx, suite.request(a, b, "10", domain.EUR))
	suite.Require().NoError(err)
	_, err = suite.service.Transfer(suite.ctx, suite.request(b, a, "5", domain.EUR))
	suite.Require().NoError(err)
	_, err = suite.service.Transfer(suite.ctx, suite.request(a, b, "1", domain.EUR))
	suite.Require().NoError(err)

	fromA, err := suite.service.ListTransfersByAccount(suite.ctx, a)
	suite.Require().NoError(err)
	suite.Require().Len(fromA, 2)
	for _, t := range fromA {
		suite.Equal(a, t.SourceAccountID)
	}

	all, err := suite.service.ListAllTransfers(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 3)
	for i := 1; i < len(all); i++ {
		suite.False(all[i].TransferDate.After(all[i-1].TransferDate))
	}
}

func (suite *TransferServiceTestSuite) TestTransfer_ConcurrentOppositeDirections() {
	a := suite.open("a", "1000", domain.EUR)
	b := suite.open("b", "1000", domain.EUR)

	const n = 100
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		from, to := a, b
		if i%2 == 1 {
			from, to = b, a
		}
		wg.Add(1)
		go func(from, to int64) {
			defer wg.Done()
			_, err := suite.service.Transfer(suite.ctx, suite.request(from, to, "10", domain.EUR))
			errs <- err
		}(from, to)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.NoError(err)
	}
	suite.True(suite.balance(a).Equal(domain.MustMoney("1000", domain.EUR)))
	suite.True(suite.balance(b).Equal(domain.MustMoney("1000", domain.EUR)))

	listed, err := suite.service.ListAllTransfers(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(listed, n)
}

func (suite *TransferServiceTestSuite) TestTransfer_ConcurrentDrainNeverOverdraws() {
	a := suite.open("a", "100", domain.EUR)
	b := suite.open("b", "0", domain.EUR)

	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.Transfer(suite.ctx, suite.request(a, b, "3", domain.EUR))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
				return
			}
			suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
		}()
	}
	wg.Wait()

	suite.Equal(33, succeeded)
	suite.True(suite.balance(a).Equal(domain.MustMoney("1", domain.EUR)))
	suite.True(suite.balance(b).Equal(domain.MustMoney("99", domain.EUR)))
}

func TestTransferService(t *testing.T) {
	suite.Run(t, new(TransferServiceTestSuite))
}

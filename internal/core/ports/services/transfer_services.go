package services

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// TransferWriterSvc executes transfers.
type TransferWriterSvc interface {
	// Transfer validates and atomically moves funds between two accounts.
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.Transfer, error)
}

// TransferReaderSvc lists committed transfers.
type TransferReaderSvc interface {
	// ListAllTransfers returns every transfer, newest first.
	ListAllTransfers(ctx context.Context) ([]domain.Transfer, error)

	// ListTransfersByAccount returns transfers where accountID is the source.
	ListTransfersByAccount(ctx context.Context, accountID int64) ([]domain.Transfer, error)
}

// TransferSvcFacade combines all transfer-related service interfaces
type TransferSvcFacade interface {
	TransferWriterSvc
	TransferReaderSvc
}

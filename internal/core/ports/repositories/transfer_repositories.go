package repositories

import (
	"context"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// TransferLedger is the append-only record of committed transfers.
type TransferLedger interface {
	// AppendTransfer stamps TransferDate with the commit time and stores the record.
	AppendTransfer(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)

	// ListTransfers returns every transfer, newest first, ties in append order.
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)

	// ListTransfersBySource returns transfers whose source is accountID, same ordering.
	ListTransfersBySource(ctx context.Context, accountID int64) ([]domain.Transfer, error)
}

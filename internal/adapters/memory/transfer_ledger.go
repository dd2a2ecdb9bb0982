package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
)

// TransferLedger is an append-only, in-memory list of committed transfers.
type TransferLedger struct {
	mu        sync.RWMutex
	transfers []domain.Transfer
	now       func() time.Time
}

// TransferLedgerOption configures a TransferLedger.
type TransferLedgerOption func(*TransferLedger)

// WithLedgerClock overrides the clock used to stamp TransferDate.
func WithLedgerClock(now func() time.Time) TransferLedgerOption {
	return func(l *TransferLedger) {
		l.now = now
	}
}

// NewTransferLedger creates an empty ledger.
func NewTransferLedger(options ...TransferLedgerOption) *TransferLedger {
	l := &TransferLedger{now: time.Now}
	for _, option := range options {
		option(l)
	}
	return l
}

// Ensure TransferLedger implements portsrepo.TransferLedger
var _ portsrepo.TransferLedger = (*TransferLedger)(nil)

// AppendTransfer stamps the commit time under the ledger lock, so append order
// and TransferDate order agree.
func (l *TransferLedger) AppendTransfer(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	transfer.TransferDate = l.now()
	l.transfers = append(l.transfers, transfer)
	return transfer, nil
}

// ListTransfers returns a snapshot of all transfers, newest first.
func (l *TransferLedger) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	return l.list(func(domain.Transfer) bool { return true }), nil
}

// ListTransfersBySource returns transfers sent from accountID, newest first.
// Transfers received by accountID are not included.
func (l *TransferLedger) ListTransfersBySource(ctx context.Context, accountID int64) ([]domain.Transfer, error) {
	return l.list(func(t domain.Transfer) bool { return t.SourceAccountID == accountID }), nil
}

func (l *TransferLedger) list(keep func(domain.Transfer) bool) []domain.Transfer {
	l.mu.RLock()
	snapshot := slices.Clone(l.transfers)
	l.mu.RUnlock()

	out := make([]domain.Transfer, 0, len(snapshot))
	for _, t := range snapshot {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TransferDate.After(out[j].TransferDate)
	})
	return out
}

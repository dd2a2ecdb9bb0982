package domain

import "time"

// Transfer is a committed movement of funds between two distinct accounts.
// Records are created only by the transfer engine and never change afterwards.
type Transfer struct {
	TransferID           string    `json:"transferId"`
	SourceAccountID      int64     `json:"sourceAccountId"`
	DestinationAccountID int64     `json:"destinationAccountId"`
	Amount               Money     `json:"amount"`
	Description          string    `json:"description"`
	TransferDate         time.Time `json:"transferDate"` // commit time, stamped by the ledger
}

// TransferRequest carries the caller's intent before validation.
type TransferRequest struct {
	SourceAccountID      int64
	DestinationAccountID int64
	Amount               Money
	Description          string
}

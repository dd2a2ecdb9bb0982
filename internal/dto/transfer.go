package dto

import (
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// CreateTransferRequest defines the data needed to move funds between two accounts.
// The ids are pointers so only a missing id fails binding; any present value,
// zero included, is judged by the transfer engine.
type CreateTransferRequest struct {
	SourceAccountID      *int64       `json:"sourceAccountId" binding:"required" example:"1"`
	DestinationAccountID *int64       `json:"destinationAccountId" binding:"required" example:"2"`
	Amount               MoneyRequest `json:"amount"`
	Description          string       `json:"description" example:"rent"`
}

// ToTransferRequest converts the DTO into the engine's request type.
func (r CreateTransferRequest) ToTransferRequest() (domain.TransferRequest, error) {
	amount, err := r.Amount.ToMoney()
	if err != nil {
		return domain.TransferRequest{}, err
	}
	var sourceID, destinationID int64
	if r.SourceAccountID != nil {
		sourceID = *r.SourceAccountID
	}
	if r.DestinationAccountID != nil {
		destinationID = *r.DestinationAccountID
	}
	return domain.TransferRequest{
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               amount,
		Description:          r.Description,
	}, nil
}

// ListTransfersParams defines query parameters for listing transfers.
type ListTransfersParams struct {
	AccountID *int64 `form:"accountId"` // optional; filters by source account
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID           string        `json:"transferId"`
	SourceAccountID      int64         `json:"sourceAccountId"`
	DestinationAccountID int64         `json:"destinationAccountId"`
	Amount               MoneyResponse `json:"amount"`
	Description          string        `json:"description"`
	TransferDate         time.Time     `json:"transferDate"`
}

// ListTransfersResponse wraps the list of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// ToTransferResponse converts a domain.Transfer to TransferResponse DTO
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID:           t.TransferID,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Amount:               ToMoneyResponse(t.Amount),
		Description:          t.Description,
		TransferDate:         t.TransferDate,
	}
}

// ToListTransferResponse converts a slice of domain.Transfer to a slice of TransferResponse DTOs
func ToListTransferResponse(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return res
}

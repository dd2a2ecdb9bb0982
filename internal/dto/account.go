package dto

import (
	"time"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	AccountHolder string       `json:"accountHolder" binding:"required" example:"Jane Doe"`
	Balance       MoneyRequest `json:"balance"`
}

// UpdateHolderRequest renames the account holder.
type UpdateHolderRequest struct {
	AccountHolder string `json:"accountHolder" binding:"required" example:"Jane Roe"`
}

// UpdateStatusRequest moves an account to ACTIVE or INACTIVE.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,account_status" example:"INACTIVE"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Status string `form:"status"` // optional, ACTIVE or INACTIVE, case-insensitive
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     int64         `json:"accountId" example:"1"`
	AccountHolder string        `json:"accountHolder" example:"Jane Doe"`
	Balance       MoneyResponse `json:"balance"`
	Status        string        `json:"status" example:"ACTIVE"`
	Created       time.Time     `json:"created"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountHolder: acc.Holder,
		Balance:       ToMoneyResponse(acc.Balance),
		Status:        string(acc.Status),
		Created:       acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrAccountNotFound indicates that no visible account exists for the given id.
// It wraps ErrNotFound so generic not-found handling keeps working.
var ErrAccountNotFound = fmt.Errorf("account not found: %w", ErrNotFound)

// ErrCurrencyMismatch indicates that a money value uses a different currency than the account balance.
var ErrCurrencyMismatch = errors.New("currency does not match account currency")

// ErrNegativeBalance indicates that a debit would take an account balance below zero.
var ErrNegativeBalance = errors.New("insufficient funds for debit")

// ErrInvalidTransfer indicates a structurally invalid transfer, e.g. source equals destination.
var ErrInvalidTransfer = errors.New("invalid transfer")

// ErrInsufficientFunds indicates that the transfer source cannot cover the transfer amount.
var ErrInsufficientFunds = errors.New("insufficient funds for transfer")

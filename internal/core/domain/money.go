package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/money_transfer_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxAmountScale is the maximum number of fractional digits a money amount may carry.
const MaxAmountScale = 2

// MaxAmountIntegerDigits caps the integer part of a money amount.
const MaxAmountIntegerDigits = 18

// maxCoefficientBits bounds the unscaled value, trailing zeros included.
const maxCoefficientBits = 256

// Currency is an ISO 4217 code drawn from the supported set.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	INR Currency = "INR"
)

var supportedCurrencies = map[Currency]struct{}{
	EUR: {},
	USD: {},
	GBP: {},
	CHF: {},
	INR: {},
}

// IsValid reports whether the currency belongs to the supported set.
func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// ParseCurrency resolves a currency code case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, code)
	}
	return c, nil
}

// Money is a non-negative decimal amount in a single currency.
// Values entering the core are always built through NewMoney.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney validates and builds a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if ExceedsMaxDigits(amount) {
		return Money{}, fmt.Errorf("%w: amount has too many digits", apperrors.ErrValidation)
	}
	if HasExcessScale(amount) {
		return Money{}, fmt.Errorf("%w: amount has more than %d fractional digits", apperrors.ErrValidation, MaxAmountScale)
	}
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, string(currency))
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(amount string, currency Currency) Money {
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	if err != nil {
		panic(err)
	}
	return m
}

// HasExcessScale reports whether the amount carries more than MaxAmountScale
// significant fractional digits. Trailing zeros do not count ("1.500" is fine).
// Only the exponent and the coefficient size are inspected before rescaling,
// so an amount like 1e-7000000 is answered without expanding its digits.
func HasExcessScale(amount decimal.Decimal) bool {
	exp := int64(amount.Exponent())
	if exp >= -MaxAmountScale || amount.IsZero() {
		return false
	}
	// a coefficient of n bits has fewer than n decimal digits, so at most n-1 trailing zeros
	if -exp-MaxAmountScale >= int64(amount.Coefficient().BitLen()) {
		return true
	}
	return !amount.Equal(amount.Truncate(MaxAmountScale))
}

// ExceedsMaxDigits reports whether the amount is too large to be money: more than
// MaxAmountIntegerDigits integer digits, or a coefficient wider than maxCoefficientBits.
func ExceedsMaxDigits(amount decimal.Decimal) bool {
	if amount.IsZero() {
		return false
	}
	if amount.Coefficient().BitLen() > maxCoefficientBits {
		return true
	}
	return int64(amount.NumDigits())+int64(amount.Exponent()) > MaxAmountIntegerDigits
}

// SameCurrency reports whether both values use the same currency.
func (m Money) SameCurrency(other Money) bool {
	return m.Currency == other.Currency
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", apperrors.ErrCurrencyMismatch, other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub returns m - other. The result may be negative; callers decide which error kind applies.
func (m Money) Sub(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", apperrors.ErrCurrencyMismatch, other.Currency, m.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equal compares amount numerically and currency exactly.
func (m Money) Equal(other Money) bool {
	return m.SameCurrency(other) && m.Amount.Equal(other.Amount)
}

// String renders the amount with two decimals, e.g. "250.00 EUR".
func (m Money) String() string {
	return m.Amount.StringFixed(MaxAmountScale) + " " + string(m.Currency)
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
)

// MoneyRequest is the wire shape of a money value. Amount is a pointer so a
// missing amount fails `required` instead of silently becoming zero. The amount
// bounds are checked by a struct-level validation registered in handlers.
type MoneyRequest struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"50.00"`
	Currency string           `json:"currency" binding:"required,currency" example:"EUR"`
}

// ToMoney converts the request into a validated domain.Money.
func (r MoneyRequest) ToMoney() (domain.Money, error) {
	currency, err := domain.ParseCurrency(r.Currency)
	if err != nil {
		return domain.Money{}, err
	}
	amount := decimal.Zero
	if r.Amount != nil {
		amount = *r.Amount
	}
	return domain.NewMoney(amount, currency)
}

// MoneyResponse defines the data returned for a money value.
type MoneyResponse struct {
	Amount   string `json:"amount" example:"250.00"`
	Currency string `json:"currency" example:"EUR"`
}

// ToMoneyResponse renders the amount with two fractional digits.
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount.StringFixed(domain.MaxAmountScale),
		Currency: string(m.Currency),
	}
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	"github.com/SscSPs/money_transfer_app/internal/dto"
)

const (
	tagMoneyAmount   = "money_amount"
	tagCurrency      = "currency"
	tagAccountStatus = "account_status"
)

var registerOnce sync.Once
var registerErr error

// RegisterValidators installs the money and status validations on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		registerErr = registerMoneyValidations(v)
	})
	return registerErr
}

func registerMoneyValidations(v *validator.Validate) error {
	v.RegisterStructValidation(validateMoneyRequest, dto.MoneyRequest{})

	if err := v.RegisterValidation(tagCurrency, func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCurrency(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("register %s: %w", tagCurrency, err)
	}
	if err := v.RegisterValidation(tagAccountStatus, func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAccountStatus(fl.Field().String())
		return err == nil
	}); err != nil {
		return fmt.Errorf("register %s: %w", tagAccountStatus, err)
	}
	return nil
}

// validateMoneyRequest checks the decimal amount itself, never its string form.
// A missing amount is left to the `required` tag.
func validateMoneyRequest(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(dto.MoneyRequest)
	if !ok || req.Amount == nil {
		return
	}
	amount := *req.Amount
	if amount.IsNegative() || domain.ExceedsMaxDigits(amount) || domain.HasExcessScale(amount) {
		sl.ReportError(req.Amount, "Amount", "amount", tagMoneyAmount, "")
	}
}

// bindErrorStatus picks 422 for well-formed requests carrying an unsupported enum value, 400 otherwise.
func bindErrorStatus(err error) int {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == tagCurrency || fe.Tag() == tagAccountStatus {
				return http.StatusUnprocessableEntity
			}
		}
	}
	return http.StatusBadRequest
}

package validator

import (
	"fmt"

	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewOrderValidator(log *logger.Logger) *OrderValidator {
	v := validation.New(log)
	log.Info("Order validator initialized successfully")

	return &OrderValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks the struct tags, then that the totals agree with the
// lines: every line price is unit price times amount, the subtotal and item
// count are the sums over lines, and the total is subtotal plus delivery fee.
func (v *OrderValidator) Validate(order *model.Order) error {
	if err := validation.Struct(v.validate, order); err != nil {
		return err
	}

	var errs validation.ValidationErrors

	subtotal := decimal.Zero
	count := 0
	for i, line := range order.Products {
		if line.PriceSingle.IsNegative() {
			errs = append(errs, validation.ValidationError{
				Field:   fmt.Sprintf("Products[%d].PriceSingle", i),
				Message: fmt.Sprintf("unit price cannot be negative, got %s", line.PriceSingle),
			})
		}
		want := line.PriceSingle.Mul(decimal.NewFromInt(int64(line.Amount)))
		if !line.Price.Equal(want) {
			errs = append(errs, validation.ValidationError{
				Field:   fmt.Sprintf("Products[%d].Price", i),
				Message: fmt.Sprintf("price must be %s (priceSingle x amount), got %s", want, line.Price),
			})
		}
		subtotal = subtotal.Add(line.Price)
		count += line.Amount
	}

	if order.TotalNumber != count {
		errs = append(errs, validation.ValidationError{
			Field:   "TotalNumber",
			Message: fmt.Sprintf("totalNumber must be %d, got %d", count, order.TotalNumber),
		})
	}
	if !order.SubTotalPrice.Equal(subtotal) {
		errs = append(errs, validation.ValidationError{
			Field:   "SubTotalPrice",
			Message: fmt.Sprintf("subTotalPrice must be %s, got %s", subtotal, order.SubTotalPrice),
		})
	}
	if order.DeliveryFee.IsNegative() {
		errs = append(errs, validation.ValidationError{
			Field:   "DeliveryFee",
			Message: fmt.Sprintf("deliveryFee cannot be negative, got %s", order.DeliveryFee),
		})
	}
	if total := order.SubTotalPrice.Add(order.DeliveryFee); !order.TotalPrice.Equal(total) {
		errs = append(errs, validation.ValidationError{
			Field:   "TotalPrice",
			Message: fmt.Sprintf("totalPrice must be %s, got %s", total, order.TotalPrice),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

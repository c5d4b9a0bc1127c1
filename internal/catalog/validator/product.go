package validator

import (
	"fmt"

	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ProductValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewProductValidator(log *logger.Logger) *ProductValidator {
	return &ProductValidator{
		validate: validation.New(log),
		logger:   log,
	}
}

// Validate checks the struct tags and that no price on the product is
// negative.
func (v *ProductValidator) Validate(product *model.Product) error {
	if err := validation.Struct(v.validate, product); err != nil {
		return err
	}

	if product.Price.IsNegative() {
		return validation.ValidationErrors{{
			Field:   "Price",
			Message: fmt.Sprintf("price cannot be negative, got %s", product.Price),
		}}
	}

	var errs validation.ValidationErrors
	for paramID, param := range product.Params {
		for optionID, option := range param.Options {
			if option.Price.IsNegative() {
				errs = append(errs, validation.ValidationError{
					Field:   fmt.Sprintf("Params.%s.Options.%s.Price", paramID, optionID),
					Message: fmt.Sprintf("option price cannot be negative, got %s", option.Price),
				})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}

	return nil
}

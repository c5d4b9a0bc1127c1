// Package menu prices configurable products and drives the per-product
// order form that feeds the cart.
package menu

import (
	"bistro/pkg/model"

	"github.com/shopspring/decimal"
)

// Selection maps a parameter id to the option ids chosen for it. A
// parameter without an entry has nothing chosen.
type Selection map[string]map[string]bool

// Has reports whether option is chosen for param.
func (s Selection) Has(param, option string) bool {
	return s[param][option]
}

// Set marks option as chosen or not chosen for param.
func (s Selection) Set(param, option string, on bool) {
	if !on {
		delete(s[param], option)
		return
	}
	if s[param] == nil {
		s[param] = map[string]bool{}
	}
	s[param][option] = true
}

// Only replaces the options chosen for param with the given ones. Radio
// and select parameters use it.
func (s Selection) Only(param string, options ...string) {
	s[param] = map[string]bool{}
	for _, o := range options {
		s[param][o] = true
	}
}

func (s Selection) Clone() Selection {
	c := make(Selection, len(s))
	for param, options := range s {
		c[param] = make(map[string]bool, len(options))
		for o, on := range options {
			c[param][o] = on
		}
	}
	return c
}

// Resolution is the price of one unit of a product under a selection,
// together with the display state of every option.
type Resolution struct {
	UnitPrice decimal.Decimal
	Active    map[string]map[string]bool
}

// Resolve prices product under selection. Starting from the base price,
// every chosen non-default option adds its price and every unchosen default
// option subtracts it. Each option contributes independently, so iteration
// order does not matter.
func Resolve(product model.Product, selection Selection) Resolution {
	price := product.Price
	active := make(map[string]map[string]bool, len(product.Params))

	for paramID, param := range product.Params {
		active[paramID] = make(map[string]bool, len(param.Options))
		for optionID, option := range param.Options {
			chosen := selection.Has(paramID, optionID)
			active[paramID][optionID] = chosen

			switch {
			case chosen && !option.Default:
				price = price.Add(option.Price)
			case !chosen && option.Default:
				price = price.Sub(option.Price)
			}
		}
	}

	return Resolution{UnitPrice: price, Active: active}
}

// DefaultSelection chooses exactly the default options of product.
func DefaultSelection(product model.Product) Selection {
	sel := make(Selection, len(product.Params))
	for paramID, param := range product.Params {
		sel[paramID] = map[string]bool{}
		for optionID, option := range param.Options {
			if option.Default {
				sel[paramID][optionID] = true
			}
		}
	}
	return sel
}

// ChosenParams returns, for every parameter of product, its label and the
// labels of the chosen options only.
func ChosenParams(product model.Product, selection Selection) map[string]model.ChosenParam {
	params := make(map[string]model.ChosenParam, len(product.Params))
	for paramID, param := range product.Params {
		chosen := model.ChosenParam{Label: param.Label, Options: map[string]string{}}
		for optionID, option := range param.Options {
			if selection.Has(paramID, optionID) {
				chosen.Options[optionID] = option.Label
			}
		}
		params[paramID] = chosen
	}
	return params
}

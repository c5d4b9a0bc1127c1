package model

import "github.com/shopspring/decimal"

// ChosenParam is the label of a parameter together with the labels of the
// options chosen for it, keyed by option id.
type ChosenParam struct {
	Label   string            `json:"label" bson:"label"`
	Options map[string]string `json:"options" bson:"options"`
}

// CartProduct is the snapshot a menu item hands to the cart. Prices are
// frozen at the moment it is taken.
type CartProduct struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Amount      int                    `json:"amount"`
	PriceSingle decimal.Decimal        `json:"priceSingle"`
	Price       decimal.Decimal        `json:"price"`
	Params      map[string]ChosenParam `json:"params"`
}

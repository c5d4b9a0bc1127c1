package model

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, the shape the API and its clients expect.
	decimal.MarshalJSONWithoutQuotes = true
}

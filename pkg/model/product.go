package model

import "github.com/shopspring/decimal"

// Param display types. They only affect rendering; pricing treats them alike.
const (
	ParamCheckboxes = "checkboxes"
	ParamRadios     = "radios"
	ParamSelect     = "select"
)

type Product struct {
	ID          string               `json:"id" bson:"_id" validate:"required"`
	Name        string               `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Price       decimal.Decimal      `json:"price" bson:"price"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Images      []string             `json:"images,omitempty" bson:"images,omitempty"`
	Params      map[string]Parameter `json:"params,omitempty" bson:"params,omitempty" validate:"omitempty,dive"`
}

type Parameter struct {
	Label   string            `json:"label" bson:"label" validate:"required"`
	Type    string            `json:"type" bson:"type" validate:"omitempty,oneof=checkboxes radios select"`
	Options map[string]Option `json:"options" bson:"options" validate:"dive"`
}

type Option struct {
	Label   string          `json:"label" bson:"label" validate:"required"`
	Price   decimal.Decimal `json:"price" bson:"price"`
	Default bool            `json:"default,omitempty" bson:"default,omitempty"`
}

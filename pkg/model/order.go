package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	Address       string          `json:"address" bson:"address" validate:"required,min=3,max=200"`
	Phone         string          `json:"phone" bson:"phone" validate:"required,e164"`
	TotalPrice    decimal.Decimal `json:"totalPrice" bson:"total_price"`
	SubTotalPrice decimal.Decimal `json:"subTotalPrice" bson:"sub_total_price"`
	TotalNumber   int             `json:"totalNumber" bson:"total_number" validate:"min=1"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee" bson:"delivery_fee"`
	Products      []OrderLine     `json:"products" bson:"products" validate:"required,min=1,dive"`
	CreatedAt     time.Time       `json:"created_at,omitzero" bson:"created_at"`
}

type OrderLine struct {
	ID          string                 `json:"id" bson:"product_id" validate:"required"`
	Amount      int                    `json:"amount" bson:"amount" validate:"min=1"`
	Price       decimal.Decimal        `json:"price" bson:"price"`
	PriceSingle decimal.Decimal        `json:"priceSingle" bson:"price_single"`
	Name        string                 `json:"name" bson:"name" validate:"required"`
	Params      map[string]ChosenParam `json:"params" bson:"params"`
}

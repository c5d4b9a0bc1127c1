package cart

import (
	"bistro/internal/quantity"
	"bistro/pkg/config"
	"bistro/pkg/model"
	"bistro/pkg/notify"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product in the cart. Its unit price, name and option
// labels are frozen when it is created; only the amount changes.
type LineItem struct {
	id       string
	snapshot model.CartProduct
	amount   *quantity.Widget

	Updated         notify.Notifier[*LineItem]
	RemoveRequested notify.Notifier[*LineItem]
}

func NewLineItem(snapshot model.CartProduct, settings config.AmountWidget) *LineItem {
	li := &LineItem{
		id:       uuid.NewString(),
		snapshot: snapshot,
		amount:   quantity.NewWithValue(settings, snapshot.Amount),
	}
	li.amount.Updated.Subscribe(func(int) { li.Updated.Notify(li) })
	return li
}

// ID identifies this line, not the product. The same product added twice
// yields two lines.
func (li *LineItem) ID() string {
	return li.id
}

func (li *LineItem) ProductID() string {
	return li.snapshot.ID
}

func (li *LineItem) Name() string {
	return li.snapshot.Name
}

func (li *LineItem) UnitPrice() decimal.Decimal {
	return li.snapshot.PriceSingle
}

func (li *LineItem) Params() map[string]model.ChosenParam {
	return li.snapshot.Params
}

func (li *LineItem) Quantity() *quantity.Widget {
	return li.amount
}

func (li *LineItem) LineTotal() decimal.Decimal {
	return li.snapshot.PriceSingle.Mul(decimal.NewFromInt(int64(li.amount.Value())))
}

// Remove asks the owning cart to drop this line. The line itself stays intact.
func (li *LineItem) Remove() {
	li.RemoveRequested.Notify(li)
}

// OrderLine serializes the line for an order payload.
func (li *LineItem) OrderLine() model.OrderLine {
	return model.OrderLine{
		ID:          li.snapshot.ID,
		Amount:      li.amount.Value(),
		Price:       li.LineTotal(),
		PriceSingle: li.snapshot.PriceSingle,
		Name:        li.snapshot.Name,
		Params:      li.snapshot.Params,
	}
}

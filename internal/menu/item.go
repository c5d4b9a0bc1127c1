package menu

import (
	"bistro/internal/quantity"
	"bistro/pkg/config"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/notify"

	"github.com/shopspring/decimal"
)

// Item is the order form of one product on the menu: its current option
// selection and amount, and the price they add up to.
type Item struct {
	product   model.Product
	selection Selection
	amount    *quantity.Widget
	priced    Resolution
	log       *logger.Logger

	// Changed carries the displayed total (unit price times amount).
	Changed notify.Notifier[decimal.Decimal]
	// AddToCart carries the snapshot taken when the item is added.
	AddToCart notify.Notifier[model.CartProduct]
}

func NewItem(product model.Product, cfg config.Engine, log *logger.Logger) *Item {
	it := &Item{
		product:   product,
		selection: DefaultSelection(product),
		amount:    quantity.New(cfg.Amount),
		log:       log.Component("menu").With("product_id", product.ID),
	}
	it.amount.Updated.Subscribe(func(int) { it.ProcessOrder() })
	it.priced = Resolve(it.product, it.selection)
	return it
}

func (it *Item) Product() model.Product {
	return it.product
}

// Quantity exposes the item's amount widget. Changing it reprices the item.
func (it *Item) Quantity() *quantity.Widget {
	return it.amount
}

// Selection returns a copy of the current selection.
func (it *Item) Selection() Selection {
	return it.selection.Clone()
}

// Toggle chooses or unchooses one option and reprices.
func (it *Item) Toggle(param, option string, on bool) {
	it.selection.Set(param, option, on)
	it.ProcessOrder()
}

// Choose makes option the only choice for param and reprices.
func (it *Item) Choose(param string, options ...string) {
	it.selection.Only(param, options...)
	it.ProcessOrder()
}

// SetSelection replaces the whole selection and reprices.
func (it *Item) SetSelection(sel Selection) {
	it.selection = sel.Clone()
	it.ProcessOrder()
}

// ProcessOrder recomputes the unit price from the current selection and
// notifies the displayed total.
func (it *Item) ProcessOrder() Resolution {
	it.priced = Resolve(it.product, it.selection)
	it.Changed.Notify(it.Total())
	return it.priced
}

func (it *Item) UnitPrice() decimal.Decimal {
	return it.priced.UnitPrice
}

// Active reports whether the option is shown as chosen.
func (it *Item) Active(param, option string) bool {
	return it.priced.Active[param][option]
}

func (it *Item) Total() decimal.Decimal {
	return it.priced.UnitPrice.Mul(decimal.NewFromInt(int64(it.amount.Value())))
}

// Snapshot freezes the current configuration into a cart product.
func (it *Item) Snapshot() model.CartProduct {
	return model.CartProduct{
		ID:          it.product.ID,
		Name:        it.product.Name,
		Amount:      it.amount.Value(),
		PriceSingle: it.priced.UnitPrice,
		Price:       it.Total(),
		Params:      ChosenParams(it.product, it.selection),
	}
}

// Add reprices, hands a snapshot to AddToCart subscribers and resets the
// form. It returns the snapshot.
func (it *Item) Add() model.CartProduct {
	it.ProcessOrder()
	snapshot := it.Snapshot()
	it.log.Debug("adding to cart", "amount", snapshot.Amount, "price", snapshot.Price.String())
	it.AddToCart.Notify(snapshot)
	it.Reset()
	return snapshot
}

// Reset puts default options back and the amount to its default.
func (it *Item) Reset() {
	it.selection = DefaultSelection(it.product)
	// The widget notifies, which reprices.
	it.amount.Reset()
}

// Package cart holds the line items a customer has chosen, keeps the order
// totals in step with them and submits the order.
package cart

import (
	"bistro/pkg/config"
	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"bistro/pkg/notify"
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// OrderSubmitter sends an order to the restaurant.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order model.Order) error
}

type Totals struct {
	TotalNumber int
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

// Cart is owned by a single goroutine, like the notifiers it exposes. Submit
// is the exception: it may be called from any goroutine and rejects a call
// that overlaps one still in flight.
type Cart struct {
	cfg       config.Engine
	submitter OrderSubmitter
	log       *logger.Logger

	items   []*LineItem
	unsubs  map[*LineItem][]func()
	address string
	phone   string
	totals  Totals

	submitMu   sync.Mutex
	submitting bool

	Updated notify.Notifier[Totals]
}

func New(cfg config.Engine, submitter OrderSubmitter, log *logger.Logger) *Cart {
	c := &Cart{
		cfg:       cfg,
		submitter: submitter,
		log:       log.Component("cart"),
		unsubs:    map[*LineItem][]func(){},
	}
	c.totals = c.compute()
	return c
}

// Add appends a line for snapshot and recomputes totals.
func (c *Cart) Add(snapshot model.CartProduct) *LineItem {
	li := NewLineItem(snapshot, c.cfg.Amount)
	c.unsubs[li] = []func(){
		li.Updated.Subscribe(func(*LineItem) { c.RecomputeTotals() }),
		li.RemoveRequested.Subscribe(c.Remove),
	}
	c.items = append(c.items, li)
	c.log.Debug("line added", "line_id", li.ID(), "product_id", li.ProductID(), "amount", li.Quantity().Value())
	c.RecomputeTotals()
	return li
}

// Remove drops li from the cart. A line the cart does not hold is ignored.
func (c *Cart) Remove(li *LineItem) {
	for i, item := range c.items {
		if item != li {
			continue
		}
		c.items = append(c.items[:i:i], c.items[i+1:]...)
		c.detach(li)
		c.log.Debug("line removed", "line_id", li.ID(), "product_id", li.ProductID())
		c.RecomputeTotals()
		return
	}
	c.log.Warn("remove requested for unknown line", "line_id", li.ID())
}

// RecomputeTotals derives the totals from the current lines and notifies.
func (c *Cart) RecomputeTotals() Totals {
	c.totals = c.compute()
	c.Updated.Notify(c.totals)
	return c.totals
}

func (c *Cart) compute() Totals {
	t := Totals{Subtotal: decimal.Zero, DeliveryFee: decimal.Zero}
	for _, li := range c.items {
		t.TotalNumber += li.Quantity().Value()
		t.Subtotal = t.Subtotal.Add(li.LineTotal())
	}
	if t.TotalNumber > 0 {
		t.DeliveryFee = c.cfg.DeliveryFee
	}
	t.Total = t.Subtotal.Add(t.DeliveryFee)
	return t
}

func (c *Cart) Totals() Totals {
	return c.totals
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) SetAddress(address string) {
	c.address = address
}

func (c *Cart) SetPhone(phone string) {
	c.phone = phone
}

func (c *Cart) Address() string {
	return c.address
}

func (c *Cart) Phone() string {
	return c.phone
}

// BuildOrderPayload serializes the cart as it stands.
func (c *Cart) BuildOrderPayload() model.Order {
	t := c.compute()
	order := model.Order{
		Address:       c.address,
		Phone:         c.phone,
		TotalPrice:    t.Total,
		SubTotalPrice: t.Subtotal,
		TotalNumber:   t.TotalNumber,
		DeliveryFee:   t.DeliveryFee,
		Products:      make([]model.OrderLine, 0, len(c.items)),
	}
	for _, li := range c.items {
		order.Products = append(order.Products, li.OrderLine())
	}
	return order
}

// Clear empties the cart and the contact fields.
func (c *Cart) Clear() {
	for _, li := range c.items {
		c.detach(li)
	}
	c.items = nil
	c.address = ""
	c.phone = ""
	c.RecomputeTotals()
}

// Submit sends the order and clears the cart once the restaurant accepts
// it. On failure the cart is left exactly as it was.
func (c *Cart) Submit(ctx context.Context) (model.Order, error) {
	if !c.beginSubmit() {
		return model.Order{}, apperrors.SubmitInProgress("order")
	}
	defer c.endSubmit()

	if len(c.items) == 0 {
		return model.Order{}, apperrors.EmptyCart()
	}

	order := c.BuildOrderPayload()
	if err := c.submitter.SubmitOrder(ctx, order); err != nil {
		c.log.Warn("order submission failed", "error", err)
		return model.Order{}, err
	}

	c.log.Info("order submitted",
		"total_number", order.TotalNumber,
		"total_price", order.TotalPrice.String(),
	)
	c.Clear()
	return order, nil
}

func (c *Cart) beginSubmit() bool {
	c.submitMu.Lock()
	defer c.submitMu.Unlock()
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

func (c *Cart) endSubmit() {
	c.submitMu.Lock()
	c.submitting = false
	c.submitMu.Unlock()
}

func (c *Cart) detach(li *LineItem) {
	for _, unsub := range c.unsubs[li] {
		unsub()
	}
	delete(c.unsubs, li)
}

// Package engine assembles the ordering engine from its configuration: one
// restaurant API client shared by the menu, the cart and the booking form.
package engine

import (
	"bistro/internal/booking"
	"bistro/internal/cart"
	"bistro/internal/menu"
	"bistro/pkg/client"
	"bistro/pkg/config"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
)

type Engine struct {
	cfg config.Engine
	log *logger.Logger

	API     *client.RestaurantClient
	Cart    *cart.Cart
	Booking *booking.Session
}

// New builds the engine against cfg.APIBaseURL. Booking options such as a
// fixed clock are passed through to the session.
func New(cfg config.Engine, log *logger.Logger, opts ...booking.Option) *Engine {
	api := client.NewRestaurantClient(cfg.APIBaseURL, cfg.APIClientTimeout, log)
	return &Engine{
		cfg:     cfg,
		log:     log.Component("engine"),
		API:     api,
		Cart:    cart.New(cfg, api, log),
		Booking: booking.NewSession(cfg, api, api, log, opts...),
	}
}

// LoadMenu fetches the catalog. Items added from the returned menu land in
// the engine's cart.
func (e *Engine) LoadMenu(ctx context.Context) ([]*menu.Item, error) {
	items, err := menu.Load(ctx, e.API, e.cfg, e.log, func(p model.CartProduct) {
		e.Cart.Add(p)
	})
	if err != nil {
		e.log.Warn("menu load failed", "api", e.cfg.APIBaseURL, "error", err)
		return nil, err
	}
	return items, nil
}

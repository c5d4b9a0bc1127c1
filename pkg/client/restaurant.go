package client

import (
	apperrors "bistro/pkg/errors"
	"bistro/pkg/logger"
	"bistro/pkg/model"
	"context"
	"net/url"
	"time"
)

const (
	ProductsPath = "/products"
	BookingsPath = "/bookings"
	EventsPath   = "/events"
	OrdersPath   = "/orders"
)

// RestaurantClient talks to the restaurant API on behalf of the ordering
// engine. It never retries.
type RestaurantClient struct {
	httpClient *HttpClient
	log        *logger.Logger
}

func NewRestaurantClient(baseURL string, timeout time.Duration, log *logger.Logger) *RestaurantClient {
	return &RestaurantClient{
		httpClient: NewHttpClient(baseURL, timeout),
		log:        log.Component("restaurant_client"),
	}
}

func (c *RestaurantClient) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.fetch(ctx, "fetch products", ProductsPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RestaurantClient) Bookings(ctx context.Context, start, end string) ([]model.BookingEntry, error) {
	q := url.Values{}
	q.Set("start", start)
	q.Set("end", end)

	var bookings []model.BookingEntry
	if err := c.fetch(ctx, "fetch bookings", BookingsPath+"?"+q.Encode(), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *RestaurantClient) OneOffEvents(ctx context.Context, start, end string) ([]model.Event, error) {
	q := url.Values{}
	q.Set("repeat", "false")
	q.Set("start", start)
	q.Set("end", end)

	var events []model.Event
	if err := c.fetch(ctx, "fetch one-off events", EventsPath+"?"+q.Encode(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *RestaurantClient) RecurringEvents(ctx context.Context, end string) ([]model.Event, error) {
	q := url.Values{}
	q.Set("repeat", model.RepeatDaily)
	q.Set("end", end)

	var events []model.Event
	if err := c.fetch(ctx, "fetch recurring events", EventsPath+"?"+q.Encode(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SubmitOrder posts the order. The response body is not interpreted.
func (c *RestaurantClient) SubmitOrder(ctx context.Context, order model.Order) error {
	return c.submit(ctx, "submit order", OrdersPath, order)
}

func (c *RestaurantClient) SubmitReservation(ctx context.Context, reservation model.Reservation) error {
	return c.submit(ctx, "submit reservation", BookingsPath, reservation)
}

func (c *RestaurantClient) fetch(ctx context.Context, operation, path string, target any) error {
	resp, err := c.httpClient.GET(ctx, path)
	if err != nil {
		c.log.Warn("request failed", "operation", operation, "error", err)
		return apperrors.TransportFailure(operation, 0, err)
	}
	if !resp.OK() {
		c.log.Warn("unexpected status", "operation", operation, "status", resp.StatusCode)
		return apperrors.TransportFailure(operation, resp.StatusCode, nil)
	}
	if err := resp.DecodeJSON(target); err != nil {
		c.log.Warn("undecodable response", "operation", operation, "error", err)
		return apperrors.MalformedResponse(operation, err)
	}
	return nil
}

func (c *RestaurantClient) submit(ctx context.Context, operation, path string, body any) error {
	resp, err := c.httpClient.POST(ctx, path, body)
	if err != nil {
		c.log.Warn("request failed", "operation", operation, "error", err)
		return apperrors.TransportFailure(operation, 0, err)
	}
	if !resp.OK() {
		c.log.Warn("unexpected status", "operation", operation, "status", resp.StatusCode, "message", ErrorMessage(resp))
		return apperrors.TransportFailure(operation, resp.StatusCode, nil)
	}
	c.log.Debug("submitted", "operation", operation, "status", resp.StatusCode)
	return nil
}

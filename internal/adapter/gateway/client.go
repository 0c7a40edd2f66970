package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smartcafe/kiosk-client/internal/entity"
	"github.com/smartcafe/kiosk-client/internal/logging"
	"github.com/smartcafe/kiosk-client/internal/usecase"
)

// ErrNoOrderID means the create-order call succeeded at the HTTP level but
// none of the known response shapes carried an order id.
var ErrNoOrderID = errors.New("no order id in response")

// Client talks to the remote SmartCafe order API. Single attempt per call
// with a fixed client-side timeout, no retries; the use cases fall back to
// local state on any error.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c, log: logging.New("gateway")}
}

func (c *Client) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Idempotency-Key", req.IdempotencyKey).
		SetBody(map[string]any{
			"items":      req.Items,
			"totalPrice": req.TotalPrice,
		}).
		Post("/order")
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("create order: status %d", resp.StatusCode())
	}

	p, err := decodePayload(resp.Body())
	if err != nil {
		return "", fmt.Errorf("create order: decode response: %w", err)
	}
	id, ok := p.orderID()
	if !ok {
		return "", ErrNoOrderID
	}
	return id, nil
}

func (c *Client) Order(ctx context.Context, orderID string) (*entity.StoredOrder, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/order/" + orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, usecase.ErrOrderNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get order %s: status %d", orderID, resp.StatusCode())
	}

	p, err := decodePayload(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("get order %s: decode response: %w", orderID, err)
	}
	order, ok := orderFromPayload(p, orderID, time.Now())
	if !ok {
		return nil, fmt.Errorf("get order %s: unrecognized payload shape", orderID)
	}
	return order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"status": string(status)}).
		Patch("/order/" + orderID)
	if err != nil {
		return fmt.Errorf("update order %s: %w", orderID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("update order %s: status %d", orderID, resp.StatusCode())
	}
	return nil
}

func (c *Client) Menus(ctx context.Context) ([]entity.MenuItem, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/menu")
	if err != nil {
		return nil, fmt.Errorf("get menus: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get menus: status %d", resp.StatusCode())
	}

	menus, ok := menusFromBody(resp.Body())
	if !ok {
		c.log.Warn("menu response shape not recognized, serving empty menu")
		return nil, nil
	}
	return menus, nil
}

func (c *Client) MenuByID(ctx context.Context, menuID int) (*entity.MenuItem, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/menu/" + strconv.Itoa(menuID))
	if err != nil {
		return nil, fmt.Errorf("get menu %d: %w", menuID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, usecase.ErrMenuNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get menu %d: status %d", menuID, resp.StatusCode())
	}

	p, err := decodePayload(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("get menu %d: decode response: %w", menuID, err)
	}
	if obj, ok := p.objectAt("data"); ok {
		m := menuFromObject(obj)
		return &m, nil
	}
	m := menuFromObject(p)
	return &m, nil
}

var _ usecase.OrderGateway = (*Client)(nil)

package backend

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/muhammadheryan/cart-reservation/cmd/config"
	"github.com/muhammadheryan/cart-reservation/model"
)

// Client talks to the storefront backend for server-side bookkeeping. Every
// call is opportunistic: callers issue them without awaiting the result for
// local admission decisions.
type Client interface {
	GetStock(ctx context.Context, productID uint64) (int64, error)
	MirrorReserve(ctx context.Context, sessionID string, productID uint64, quantity int) error
	UpdateReservation(ctx context.Context, sessionID string, productID uint64, quantity int) error
	ReleaseReservation(ctx context.Context, sessionID string, productID uint64) error
	MirrorCartAdd(ctx context.Context, sessionID string, line model.CartLine) error
	MirrorCartUpdate(ctx context.Context, sessionID string, line model.CartLine) error
	MirrorCartDelete(ctx context.Context, sessionID string, productID uint64) error
	MirrorCartClear(ctx context.Context, sessionID string) error
}

type restClient struct {
	http *resty.Client
}

// NewClient builds a resty-backed backend client from config.
func NewClient(cfg *config.Config) Client {
	http := resty.New().
		SetBaseURL(cfg.Backend.BaseURL).
		SetTimeout(cfg.Backend.Timeout).
		SetHeader("Content-Type", "application/json")
	return &restClient{http: http}
}

type stockResponse struct {
	ProductID uint64 `json:"product_id"`
	Stock     int64  `json:"stock"`
}

type reservationPayload struct {
	SessionID string `json:"session_id"`
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type cartLinePayload struct {
	SessionID string `json:"session_id"`
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (c *restClient) GetStock(ctx context.Context, productID uint64) (int64, error) {
	var out stockResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/internal/products/%d/stock", productID))
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("backend stock query: status %d", resp.StatusCode())
	}
	return out.Stock, nil
}

func (c *restClient) MirrorReserve(ctx context.Context, sessionID string, productID uint64, quantity int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reservationPayload{SessionID: sessionID, ProductID: productID, Quantity: quantity}).
		Post("/internal/reservations")
	return wrap("reserve", resp, err)
}

func (c *restClient) UpdateReservation(ctx context.Context, sessionID string, productID uint64, quantity int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reservationPayload{SessionID: sessionID, ProductID: productID, Quantity: quantity}).
		Put(fmt.Sprintf("/internal/reservations/%d", productID))
	return wrap("update reservation", resp, err)
}

func (c *restClient) ReleaseReservation(ctx context.Context, sessionID string, productID uint64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		Delete(fmt.Sprintf("/internal/reservations/%d", productID))
	return wrap("release reservation", resp, err)
}

func (c *restClient) MirrorCartAdd(ctx context.Context, sessionID string, line model.CartLine) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(cartLinePayload{SessionID: sessionID, ProductID: line.ProductID, Quantity: line.Quantity}).
		Post("/internal/cart/add")
	return wrap("cart add", resp, err)
}

func (c *restClient) MirrorCartUpdate(ctx context.Context, sessionID string, line model.CartLine) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(cartLinePayload{SessionID: sessionID, ProductID: line.ProductID, Quantity: line.Quantity}).
		Put(fmt.Sprintf("/internal/cart/%d", line.ProductID))
	return wrap("cart update", resp, err)
}

func (c *restClient) MirrorCartDelete(ctx context.Context, sessionID string, productID uint64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		Delete(fmt.Sprintf("/internal/cart/%d", productID))
	return wrap("cart delete", resp, err)
}

func (c *restClient) MirrorCartClear(ctx context.Context, sessionID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("session_id", sessionID).
		Delete("/internal/cart/clear")
	return wrap("cart clear", resp, err)
}

func wrap(op string, resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("backend %s: status %d", op, resp.StatusCode())
	}
	return nil
}

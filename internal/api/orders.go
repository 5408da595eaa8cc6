package api

import (
	"context"
	"fmt"
	"net/http"
)

// CheckoutRequest is the body for POST /api/orders/checkout. The server
// checks out the caller's cart; the body carries only the fulfillment
// choices, never an item list.
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	VoucherCode     string `json:"voucherCode,omitempty"`
}

// Checkout places an order from the cart and returns the receipt.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*OrderPayload, error) {
	var out OrderPayload
	if err := c.do(ctx, "orders.checkout", http.MethodPost, "/api/orders/checkout", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrders fetches the caller's orders, newest first.
func (c *Client) ListOrders(ctx context.Context) ([]OrderPayload, error) {
	var out []OrderPayload
	if err := c.do(ctx, "orders.list", http.MethodGet, "/api/user/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*OrderPayload, error) {
	path := fmt.Sprintf("/api/user/orders/%d", orderID)
	var out OrderPayload
	if err := c.do(ctx, "orders.get", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus transitions an order to the given status. Used for the
// buyer-side cancel and delivery confirmation as well as seller-side moves.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	path := fmt.Sprintf("/api/user/orders/%d/status", orderID)
	body := map[string]string{"status": status}
	return c.do(ctx, "orders.update_status", http.MethodPut, path, nil, body, nil)
}

// ListSales fetches orders containing the caller's products.
func (c *Client) ListSales(ctx context.Context) ([]OrderPayload, error) {
	var out []OrderPayload
	if err := c.do(ctx, "sales.list", http.MethodGet, "/api/user/sales", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

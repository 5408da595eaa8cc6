package api

import (
	"context"
	"fmt"
	"net/http"
)

// GetCart fetches the caller's cart envelope.
func (c *Client) GetCart(ctx context.Context) (*CartPayload, error) {
	var out CartPayload
	if err := c.do(ctx, "cart.get", http.MethodGet, "/api/cart", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddToCartResult is the acknowledgement for a cart add.
type AddToCartResult struct {
	Message       string `json:"message"`
	CartItemCount int    `json:"cartItemCount"`
}

// AddToCart adds quantity units of the product to the cart. The backend
// merges into an existing line when one exists.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (*AddToCartResult, error) {
	body := map[string]any{
		"productId": productID,
		"quantity":  quantity,
	}
	var out AddToCartResult
	if err := c.do(ctx, "cart.add", http.MethodPost, "/api/cart/add", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartItem sets the quantity of a cart line. quantity=0 deletes the
// line on the server side; callers route zero through the remove flow.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	path := fmt.Sprintf("/api/cart/items/%d", itemID)
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, "cart.update_item", http.MethodPut, path, nil, body, nil)
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	path := fmt.Sprintf("/api/cart/items/%d", itemID)
	return c.do(ctx, "cart.remove_item", http.MethodDelete, path, nil, nil, nil)
}

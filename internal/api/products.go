package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/pkg/pagination"
)

// ListProducts fetches a page of the catalog.
func (c *Client) ListProducts(ctx context.Context, page pagination.Params) ([]ProductPayload, error) {
	var out []ProductPayload
	if err := c.do(ctx, "products.list", http.MethodGet, "/api/products", page.Query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches a single product.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*ProductPayload, error) {
	path := fmt.Sprintf("/api/products/%d", productID)
	var out ProductPayload
	if err := c.do(ctx, "products.get", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductInput is the body for product create/update.
type ProductInput struct {
	ProductName       string          `json:"productName"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantityAvailable"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// CreateProduct lists a new product for the calling seller.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*ProductPayload, error) {
	var out ProductPayload
	if err := c.do(ctx, "products.create", http.MethodPost, "/api/products", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, input ProductInput) (*ProductPayload, error) {
	path := fmt.Sprintf("/api/products/%d", productID)
	var out ProductPayload
	if err := c.do(ctx, "products.update", http.MethodPut, path, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes one of the caller's products.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/products/%d", productID)
	return c.do(ctx, "products.delete", http.MethodDelete, path, nil, nil, nil)
}

// ListMyProducts fetches the calling seller's own products.
func (c *Client) ListMyProducts(ctx context.Context) ([]ProductPayload, error) {
	var out []ProductPayload
	if err := c.do(ctx, "products.mine", http.MethodGet, "/api/user/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LikeProduct records a like for the product.
func (c *Client) LikeProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/products/%d/like", productID)
	return c.do(ctx, "products.like", http.MethodPost, path, nil, nil, nil)
}

// UnlikeProduct removes the caller's like.
func (c *Client) UnlikeProduct(ctx context.Context, productID int64) error {
	path := fmt.Sprintf("/api/products/%d/like", productID)
	return c.do(ctx, "products.unlike", http.MethodDelete, path, nil, nil, nil)
}

// ListLikedProducts fetches the products the caller has liked.
func (c *Client) ListLikedProducts(ctx context.Context) ([]ProductPayload, error) {
	var out []ProductPayload
	if err := c.do(ctx, "products.liked", http.MethodGet, "/api/user/likes", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package api

import (
	"context"
	"net/http"
)

// GetAccount fetches the caller's profile.
func (c *Client) GetAccount(ctx context.Context) (*AccountPayload, error) {
	var out AccountPayload
	if err := c.do(ctx, "account.get", http.MethodGet, "/api/user/account", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountInput is the body for profile updates.
type AccountInput struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// UpdateAccount replaces the mutable profile fields.
func (c *Client) UpdateAccount(ctx context.Context, input AccountInput) (*AccountPayload, error) {
	var out AccountPayload
	if err := c.do(ctx, "account.update", http.MethodPut, "/api/user/account", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BecomeSeller upgrades the account to a seller account.
func (c *Client) BecomeSeller(ctx context.Context) (*AccountPayload, error) {
	var out AccountPayload
	if err := c.do(ctx, "account.become_seller", http.MethodPost, "/api/user/become-seller", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"net/http"
)

// ListVouchers fetches the currently active vouchers.
func (c *Client) ListVouchers(ctx context.Context) ([]VoucherPayload, error) {
	var out []VoucherPayload
	if err := c.do(ctx, "vouchers.list", http.MethodGet, "/api/vouchers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

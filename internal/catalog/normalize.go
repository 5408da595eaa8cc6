package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
)

// Normalize maps a wire product onto the canonical entity. All duck-typed
// fallback chains (productId|id, productName|name, the seller name
// precedence) are resolved here and nowhere else.
func Normalize(payload api.ProductPayload) Product {
	product := Product{
		ID:                resolveID(payload),
		Name:              resolveName(payload),
		Description:       payload.Description,
		Category:          payload.Category,
		ImageURL:          payload.ImageURL,
		QuantityAvailable: payload.QuantityAvailable,
		LikeCount:         payload.LikeCount,
		CreatedAt:         payload.CreatedAt,
	}

	if payload.Price != nil {
		product.Price = *payload.Price
	} else {
		product.Price = decimal.Zero
	}

	if payload.Seller != nil {
		seller := Seller{
			UserID:   payload.Seller.UserID,
			Username: payload.Seller.Username,
			Email:    payload.Seller.Email,
			FullName: payload.Seller.FullName,
		}
		product.Seller = &seller
	}
	product.SellerKey = resolveSellerKey(payload.Seller)
	product.SellerName = resolveSellerName(payload)

	return product
}

// NormalizeAll maps a payload slice, preserving order.
func NormalizeAll(payloads []api.ProductPayload) []Product {
	products := make([]Product, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, Normalize(payload))
	}
	return products
}

func resolveID(payload api.ProductPayload) int64 {
	if payload.ProductID != nil {
		return *payload.ProductID
	}
	if payload.ID != nil {
		return *payload.ID
	}
	return 0
}

func resolveName(payload api.ProductPayload) string {
	if name := strings.TrimSpace(payload.ProductName); name != "" {
		return name
	}
	if name := strings.TrimSpace(payload.Name); name != "" {
		return name
	}
	return "Product"
}

func resolveSellerKey(seller *api.SellerPayload) string {
	if seller != nil && seller.UserID != nil {
		return strconv.FormatInt(*seller.UserID, 10)
	}
	return UnknownSellerKey
}

// resolveSellerName walks the precedence chain: seller full name, username,
// email, then the product-level aliases, then the placeholder.
func resolveSellerName(payload api.ProductPayload) string {
	if payload.Seller != nil {
		for _, candidate := range []string{payload.Seller.FullName, payload.Seller.Username, payload.Seller.Email} {
			if name := strings.TrimSpace(candidate); name != "" {
				return name
			}
		}
	}
	for _, candidate := range []string{payload.SellerName, payload.FullName, payload.FullNameSnake} {
		if name := strings.TrimSpace(candidate); name != "" {
			return name
		}
	}
	return UnknownSellerName
}

package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// UnknownSellerKey groups items whose product carries no seller id.
	UnknownSellerKey = "unknown"
	// UnknownSellerName is rendered when no name field resolves.
	UnknownSellerName = "Unknown Seller"
)

// Seller is the canonical selling-user snapshot attached to a product.
type Seller struct {
	UserID   *int64
	Username string
	Email    string
	FullName string
}

// Product is the canonical product entity. It is produced exactly once per
// payload by Normalize; view code never reads the duck-typed wire fields.
type Product struct {
	ID                int64
	Name              string
	Description       string
	Category          string
	Price             decimal.Decimal
	ImageURL          string
	QuantityAvailable int
	SellerKey         string
	SellerName        string
	Seller            *Seller
	LikeCount         int
	CreatedAt         *time.Time
}

// InStock reports whether any units remain.
func (p Product) InStock() bool {
	return p.QuantityAvailable > 0
}

package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/catalog"
)

// Item is one cart line. Quantity is at least 1 while the line exists;
// zero is expressed by deleting the line, never stored.
type Item struct {
	ID              int64
	Quantity        int
	PriceAtAddition *decimal.Decimal
	AddedAt         *time.Time
	Product         catalog.Product
}

// ItemFromPayload normalizes one wire cart line.
func ItemFromPayload(payload api.CartItemPayload) Item {
	item := Item{
		ID:              payload.ID,
		Quantity:        payload.Quantity,
		PriceAtAddition: payload.PriceAtAddition,
		AddedAt:         payload.AddedAt,
	}
	if payload.Product != nil {
		item.Product = catalog.Normalize(*payload.Product)
	} else {
		item.Product = catalog.Normalize(api.ProductPayload{})
	}
	return item
}

// ItemsFromPayload normalizes the cart envelope's lines, preserving order.
func ItemsFromPayload(payload *api.CartPayload) []Item {
	if payload == nil {
		return nil
	}
	items := make([]Item, 0, len(payload.Items))
	for _, line := range payload.Items {
		items = append(items, ItemFromPayload(line))
	}
	return items
}

// UnitPrice is the price charged per unit: the price captured at addition
// when present, else the product's current price, else zero.
func (i Item) UnitPrice() decimal.Decimal {
	if i.PriceAtAddition != nil {
		return *i.PriceAtAddition
	}
	return i.Product.Price
}

// LineTotal is UnitPrice times Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OutOfStock is the single source of truth for stock partitioning. Every
// other operation calls it rather than re-deriving availability.
func OutOfStock(item Item) bool {
	return item.Product.QuantityAvailable == 0
}

package orders

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/catalog"
)

// Status enumerates the order lifecycle.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// sellerTransitions is the allowed forward path for seller-side status
// moves. Cancellation is reachable until the order ships.
var sellerTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// CanTransition reports whether a seller may move an order from one
// status to another.
func CanTransition(from, to Status) bool {
	for _, candidate := range sellerTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// OrderItem is one purchased line.
type OrderItem struct {
	ID              int64
	Quantity        int
	PriceAtPurchase decimal.Decimal
	Product         catalog.Product
}

// Order is a read-mostly entity mirrored from the API.
type Order struct {
	ID              int64
	Status          Status
	TotalAmount     decimal.Decimal
	DiscountAmount  decimal.Decimal
	ShippingFee     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	VoucherCode     string
	Items           []OrderItem
	CreatedAt       *time.Time
}

// FromPayload normalizes one wire order.
func FromPayload(payload api.OrderPayload) Order {
	order := Order{
		ID:              payload.OrderID,
		Status:          Status(payload.Status),
		TotalAmount:     payload.TotalAmount,
		DiscountAmount:  payload.DiscountAmount,
		ShippingFee:     payload.ShippingFee,
		ShippingAddress: payload.ShippingAddress,
		PaymentMethod:   payload.PaymentMethod,
		VoucherCode:     payload.VoucherCode,
		CreatedAt:       payload.CreatedAt,
	}
	for _, line := range payload.Items {
		item := OrderItem{
			ID:       line.ID,
			Quantity: line.Quantity,
		}
		if line.PriceAtPurchase != nil {
			item.PriceAtPurchase = *line.PriceAtPurchase
		}
		if line.Product != nil {
			item.Product = catalog.Normalize(*line.Product)
		}
		order.Items = append(order.Items, item)
	}
	return order
}

// FromPayloads normalizes a list, preserving order.
func FromPayloads(payloads []api.OrderPayload) []Order {
	out := make([]Order, 0, len(payloads))
	for _, payload := range payloads {
		out = append(out, FromPayload(payload))
	}
	return out
}

// DisplaySubtotal back-derives the item subtotal for rendering only:
// the stored total already folds in discount and shipping.
func (o Order) DisplaySubtotal() decimal.Decimal {
	return o.TotalAmount.Add(o.DiscountAmount).Sub(o.ShippingFee)
}

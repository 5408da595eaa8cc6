package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/wildmart/wildmart-go/internal/cart"
)

// shippingRate is the flat 5% shipping rule. Not configurable; the only
// way to waive shipping is a SHIPPING voucher.
var shippingRate = decimal.NewFromFloat(0.05)

var oneHundred = decimal.NewFromInt(100)

// Subtotal sums UnitPrice times Quantity over the checkout item set.
func Subtotal(items []cart.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// ShippingFee is the flat-rate fee on the subtotal.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(shippingRate)
}

// Discount computes the voucher deduction. The result is clamped to
// [0, subtotal+shippingFee] so a discount can never push the grand total
// negative, whatever the voucher value.
func Discount(voucher *Voucher, subtotal, shippingFee decimal.Decimal) decimal.Decimal {
	if voucher == nil {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch voucher.DiscountType {
	case DiscountPercentage:
		discount = subtotal.Mul(voucher.DiscountValue.Div(oneHundred))
	case DiscountFixedAmount:
		discount = voucher.DiscountValue
	case DiscountShipping:
		discount = shippingFee
	default:
		return decimal.Zero
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	if cap := subtotal.Add(shippingFee); discount.GreaterThan(cap) {
		return cap
	}
	return discount
}

// Summary is the priced breakdown rendered on the checkout screen.
type Summary struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Discount    decimal.Decimal
	GrandTotal  decimal.Decimal
	VoucherCode string
}

// Summarize prices the item set under the optionally applied voucher.
func Summarize(items []cart.Item, voucher *Voucher) Summary {
	subtotal := Subtotal(items)
	shipping := ShippingFee(subtotal)
	discount := Discount(voucher, subtotal, shipping)

	summary := Summary{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		Discount:    discount,
		GrandTotal:  subtotal.Add(shipping).Sub(discount),
	}
	if voucher != nil {
		summary.VoucherCode = voucher.DiscountCode
	}
	return summary
}

package cart

import "github.com/shopspring/decimal"

// Total sums UnitPrice times Quantity over in-stock items only.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if OutOfStock(item) {
			continue
		}
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// SelectedTotal is the same sum restricted to the selection. An empty
// selection yields exactly zero: the display total requires an explicit
// selection, unlike the checkout fallback which defaults to everything
// in stock.
func SelectedTotal(items []Item, selection Selection) decimal.Decimal {
	if selection.Len() == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, item := range items {
		if OutOfStock(item) || !selection.Has(item.ID) {
			continue
		}
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

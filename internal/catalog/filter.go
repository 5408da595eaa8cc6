package catalog

import (
	"sort"
	"strings"
)

// Sort orders for the catalog listing.
type Sort string

const (
	SortNone      Sort = ""
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortNewest    Sort = "newest"
)

// Filter is a pure client-side view over a previously fetched product list.
type Filter struct {
	Query    string
	Category string
	Sort     Sort
}

// Apply returns the products matching the filter, sorted as requested.
// The input slice is never mutated.
func (f Filter) Apply(products []Product) []Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)

	matched := make([]Product, 0, len(products))
	for _, product := range products {
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}
		matched = append(matched, product)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price.LessThan(matched[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[j].Price.LessThan(matched[i].Price)
		})
	case SortNewest:
		sort.SliceStable(matched, func(i, j int) bool {
			left, right := matched[i].CreatedAt, matched[j].CreatedAt
			if left == nil || right == nil {
				return right == nil && left != nil
			}
			return right.Before(*left)
		})
	}

	return matched
}

func matchesQuery(product Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query)
}

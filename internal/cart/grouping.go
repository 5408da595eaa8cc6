package cart

import "github.com/wildmart/wildmart-go/internal/catalog"

// SellerGroup is a derived, non-persisted partition of cart items by the
// selling user.
type SellerGroup struct {
	SellerKey  string
	SellerName string
	Seller     *catalog.Seller
	Items      []Item
}

// GroupBySeller partitions items by seller key. Groups appear in
// first-seen seller order and items keep their input order within a group,
// so re-rendering after a refresh is stable.
func GroupBySeller(items []Item) []SellerGroup {
	groups := make([]SellerGroup, 0)
	indexByKey := make(map[string]int)

	for _, item := range items {
		key := item.Product.SellerKey
		idx, seen := indexByKey[key]
		if !seen {
			idx = len(groups)
			indexByKey[key] = idx
			groups = append(groups, SellerGroup{
				SellerKey:  key,
				SellerName: item.Product.SellerName,
				Seller:     item.Product.Seller,
			})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	return groups
}

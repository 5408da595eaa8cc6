package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func filterProduct(id int64, name, category, price string, createdAt *time.Time) Product {
	return Product{
		ID:                id,
		Name:              name,
		Category:          category,
		Price:             decimal.RequireFromString(price),
		QuantityAvailable: 1,
		CreatedAt:         createdAt,
	}
}

func TestFilterQueryMatchesNameAndDescription(t *testing.T) {
	t.Parallel()

	products := []Product{
		filterProduct(1, "Scientific Calculator", "Electronics", "300.00", nil),
		{ID: 2, Name: "Notebook", Description: "engineering calculator paper", Price: decimal.NewFromInt(20), QuantityAvailable: 1},
		filterProduct(3, "Hoodie", "Clothing", "450.00", nil),
	}

	got := Filter{Query: "  CALCULATOR "}.Apply(products)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected products 1 and 2, got %+v", got)
	}
}

func TestFilterCategoryCaseInsensitive(t *testing.T) {
	t.Parallel()

	products := []Product{
		filterProduct(1, "Calculator", "Electronics", "300.00", nil),
		filterProduct(2, "Hoodie", "Clothing", "450.00", nil),
	}

	got := Filter{Category: "electronics"}.Apply(products)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected product 1, got %+v", got)
	}
}

func TestFilterSortPrice(t *testing.T) {
	t.Parallel()

	products := []Product{
		filterProduct(1, "A", "", "300.00", nil),
		filterProduct(2, "B", "", "20.00", nil),
		filterProduct(3, "C", "", "450.00", nil),
	}

	asc := Filter{Sort: SortPriceAsc}.Apply(products)
	if asc[0].ID != 2 || asc[1].ID != 1 || asc[2].ID != 3 {
		t.Fatalf("ascending order wrong: %+v", asc)
	}

	desc := Filter{Sort: SortPriceDesc}.Apply(products)
	if desc[0].ID != 3 || desc[1].ID != 1 || desc[2].ID != 2 {
		t.Fatalf("descending order wrong: %+v", desc)
	}

	// The input order is untouched.
	if products[0].ID != 1 || products[2].ID != 3 {
		t.Fatalf("input mutated: %+v", products)
	}
}

func TestFilterSortNewest(t *testing.T) {
	t.Parallel()

	older := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	products := []Product{
		filterProduct(1, "A", "", "10.00", &older),
		filterProduct(2, "B", "", "10.00", nil),
		filterProduct(3, "C", "", "10.00", &newer),
	}

	got := Filter{Sort: SortNewest}.Apply(products)
	if got[0].ID != 3 || got[1].ID != 1 || got[2].ID != 2 {
		t.Fatalf("newest-first order wrong: %+v", got)
	}
}

func TestFilterEmptyPassesThrough(t *testing.T) {
	t.Parallel()

	products := []Product{
		filterProduct(1, "A", "", "10.00", nil),
		filterProduct(2, "B", "", "20.00", nil),
	}

	got := Filter{}.Apply(products)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected pass-through, got %+v", got)
	}
}

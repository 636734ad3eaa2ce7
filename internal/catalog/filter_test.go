package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filterNames(products []Product, search, category string) []string {
	out := []string{}
	for _, p := range Filter(products, search, category) {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterSearchAndCategory(t *testing.T) {
	products := []Product{
		{Name: "Acid Tee", Category: "Acid Washed Oversized Tees", Description: "washed cotton"},
		{Name: "Plain Tee", Category: "Regular Fit T-Shirts", Description: "plain cotton"},
	}

	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{"search only", "acid", "", []string{"Acid Tee"}},
		{"category only", "", "Regular Fit T-Shirts", []string{"Plain Tee"}},
		{"search matches both in order", "tee", "", []string{"Acid Tee", "Plain Tee"}},
		{"no filters returns everything", "", "", []string{"Acid Tee", "Plain Tee"}},
		{"search and category are ANDed", "acid", "Regular Fit T-Shirts", []string{}},
		{"case insensitive", "ACID", "", []string{"Acid Tee"}},
		{"description matches too", "plain cotton", "", []string{"Plain Tee"}},
		{"no match", "hoodie", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterNames(products, tt.search, tt.category)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	cat := Default()
	got := Filter(cat.Products, "tee", "")
	if len(got) < 2 {
		t.Fatalf("expected several tee matches, got %d", len(got))
	}

	// Matches must appear in catalog order.
	pos := map[string]int{}
	for i, p := range cat.Products {
		pos[p.ID] = i
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].ID] >= pos[got[i].ID] {
			t.Errorf("result out of catalog order at %d: %s before %s", i, got[i-1].ID, got[i].ID)
		}
	}
}

func TestFilterDeterministic(t *testing.T) {
	cat := Default()
	a := Filter(cat.Products, "oversized", "Oversized T-Shirts")
	b := Filter(cat.Products, "oversized", "Oversized T-Shirts")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical inputs produced different outputs:\n%s", diff)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	cat := Default()
	before := make([]Product, len(cat.Products))
	copy(before, cat.Products)

	Filter(cat.Products, "acid", "Premium Hoodies")

	if diff := cmp.Diff(before, cat.Products); diff != "" {
		t.Errorf("Filter mutated its input:\n%s", diff)
	}
}

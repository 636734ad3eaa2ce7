package catalog

import "testing"

func TestDefaultCatalogIntegrity(t *testing.T) {
	cat := Default()

	if len(cat.Products) == 0 || len(cat.Categories) == 0 {
		t.Fatal("default catalog is empty")
	}

	seen := map[string]bool{}
	names := map[string]bool{}
	for _, c := range cat.Categories {
		if names[c.Name] {
			t.Errorf("duplicate category name %q", c.Name)
		}
		names[c.Name] = true
	}

	for _, p := range cat.Products {
		if seen[p.ID] {
			t.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if p.Price < 0 {
			t.Errorf("product %s has negative price", p.ID)
		}
		if p.OriginalPrice != 0 && p.OriginalPrice < p.Price {
			t.Errorf("product %s original price %.2f below price %.2f", p.ID, p.OriginalPrice, p.Price)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Errorf("product %s rating %.1f out of range", p.ID, p.Rating)
		}
		if p.Reviews < 0 {
			t.Errorf("product %s has negative review count", p.ID)
		}
		if !names[p.Category] {
			t.Errorf("product %s references unknown category %q", p.ID, p.Category)
		}
	}
}

func TestProductByID(t *testing.T) {
	cat := Default()

	p, ok := cat.ProductByID("1")
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if p.Name != "ASTRO WORLD Acid Wash Oversized Tee" {
		t.Errorf("unexpected product 1 name: %q", p.Name)
	}

	// "3" was retired upstream; the gap is intentional.
	if _, ok := cat.ProductByID("3"); ok {
		t.Error("expected no product with id 3")
	}
	if _, ok := cat.ProductByID("nope"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestCategoryByName(t *testing.T) {
	cat := Default()
	c, ok := cat.CategoryByName("Premium Hoodies")
	if !ok {
		t.Fatal("expected Premium Hoodies category")
	}
	if c.ID != "4" {
		t.Errorf("unexpected category id %q", c.ID)
	}
	if _, ok := cat.CategoryByName("Socks"); ok {
		t.Error("expected lookup miss for unknown category")
	}
}

func TestFeaturedAndInCategory(t *testing.T) {
	cat := Default()

	for _, p := range cat.Featured() {
		if !p.Featured {
			t.Errorf("non-featured product %s in Featured()", p.ID)
		}
	}

	hoodies := cat.InCategory("Premium Hoodies")
	if len(hoodies) != 4 {
		t.Fatalf("expected 4 hoodies, got %d", len(hoodies))
	}
	for _, p := range hoodies {
		if p.Category != "Premium Hoodies" {
			t.Errorf("product %s leaked into hoodie listing", p.ID)
		}
	}
}

func TestDiscounted(t *testing.T) {
	if (Product{Price: 10}).Discounted() {
		t.Error("product without original price reported as discounted")
	}
	if !(Product{Price: 10, OriginalPrice: 15}).Discounted() {
		t.Error("discounted product not reported")
	}
}

// Package catalog holds the static Breza product catalog.
// The data is build-time fixed: there is no fetch path and no write path.
// Everything here is immutable reference data handed to the UI at startup.
package catalog

// Product is one sellable item. Created at catalog load, never mutated.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"` // 0 = no discount; when set, >= Price
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category"` // joins Category.Name
	Description   string   `json:"description"`
	Rating        float64  `json:"rating"` // 0-5
	Reviews       int      `json:"reviews"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
}

// Discounted reports whether the product carries a strike-through price.
func (p Product) Discounted() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice > p.Price
}

// Category groups products by name.
//
// ProductCount is informational display data carried from the source
// catalog. It may drift from the number of products actually in the
// category and is intentionally not recomputed.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"` // unique, the join key for Product.Category
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

// Catalog is the full read-only product and category set.
type Catalog struct {
	Products   []Product
	Categories []Category
}

// Default returns the built-in Breza catalog.
func Default() Catalog {
	return Catalog{Products: products, Categories: categories}
}

// ProductByID looks up a product by its identifier.
func (c Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CategoryByName looks up a category by its (unique) name.
func (c Catalog) CategoryByName(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Featured returns the featured products in catalog order.
func (c Catalog) Featured() []Product {
	out := make([]Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// InCategory returns the products whose category name matches exactly,
// in catalog order.
func (c Catalog) InCategory(name string) []Product {
	return Filter(c.Products, "", name)
}

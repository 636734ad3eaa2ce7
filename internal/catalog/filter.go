package catalog

import "strings"

// Filter returns the subset of products visible under the given search
// text and category selection.
//
// A product is included iff both hold:
//   - category is empty, or the product's category equals it exactly
//   - search is empty, or the search text is a case-insensitive substring
//     of the product's name or description
//
// The result preserves the input's relative order and the input slice is
// never modified. Identical inputs always yield identical output.
func Filter(products []Product, search, category string) []Product {
	q := strings.ToLower(search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

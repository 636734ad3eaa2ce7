// Package cart implements the shopping cart state machine.
//
// All mutations go through Apply, a pure transition function over a small
// sum type of actions. Apply never fails: unknown product ids are no-ops
// and quantities are clamped by removal, so every defined action yields a
// defined next state. The derived Total is recomputed from the line items
// on every transition; it is never adjusted incrementally.
package cart

import "breza/internal/catalog"

// LineItem is one cart entry: a product, how many, and the selected
// variant. Color and Size are free-form display strings; they are not
// validated against a size chart at this layer.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"` // always >= 1 while the line exists
	Color    string          `json:"color,omitempty"`
	Size     string          `json:"size,omitempty"`
}

// Subtotal is the line's contribution to the cart total.
func (li LineItem) Subtotal() float64 {
	return li.Product.Price * float64(li.Quantity)
}

// State is the full cart: line items in insertion order plus the derived
// total. The cart holds at most one line item per product id; selecting a
// different color or size for a product already in the cart updates the
// existing line instead of creating a second one.
type State struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// Units returns the total number of units across all lines, the number
// shown on the cart badge.
func (s State) Units() int {
	n := 0
	for _, li := range s.Items {
		n += li.Quantity
	}
	return n
}

// Find returns the line item for a product id, if present.
func (s State) Find(productID string) (LineItem, bool) {
	for _, li := range s.Items {
		if li.Product.ID == productID {
			return li, true
		}
	}
	return LineItem{}, false
}

// Action is a cart mutation. The concrete types below are the only
// intents the cart accepts.
type Action interface {
	isCartAction()
}

// AddItem puts one unit of a product into the cart. If the product is
// already present its quantity is incremented, and a non-empty Color or
// Size on the action overwrites the line's previous selection
// (last selection wins).
type AddItem struct {
	Product catalog.Product
	Color   string
	Size    string
}

// UpdateQuantity sets a line's quantity to an exact value. A quantity of
// zero or less removes the line. Unknown ids are ignored.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// RemoveItem deletes a line. Unknown ids are ignored.
type RemoveItem struct {
	ProductID string
}

// Clear empties the cart. Dispatched after checkout completes.
type Clear struct{}

func (AddItem) isCartAction()        {}
func (UpdateQuantity) isCartAction() {}
func (RemoveItem) isCartAction()     {}
func (Clear) isCartAction()          {}

// Apply computes the next cart state. The input state is never modified.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case AddItem:
		items := make([]LineItem, len(s.Items), len(s.Items)+1)
		copy(items, s.Items)

		found := false
		for i := range items {
			if items[i].Product.ID == act.Product.ID {
				items[i].Quantity++
				if act.Color != "" {
					items[i].Color = act.Color
				}
				if act.Size != "" {
					items[i].Size = act.Size
				}
				found = true
				break
			}
		}
		if !found {
			items = append(items, LineItem{
				Product:  act.Product,
				Quantity: 1,
				Color:    act.Color,
				Size:     act.Size,
			})
		}
		return State{Items: items, Total: recompute(items)}

	case UpdateQuantity:
		if act.Quantity <= 0 {
			return Apply(s, RemoveItem{ProductID: act.ProductID})
		}
		items := make([]LineItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].Product.ID == act.ProductID {
				items[i].Quantity = act.Quantity
				return State{Items: items, Total: recompute(items)}
			}
		}
		return s // unknown id: no-op

	case RemoveItem:
		items := make([]LineItem, 0, len(s.Items))
		for _, li := range s.Items {
			if li.Product.ID != act.ProductID {
				items = append(items, li)
			}
		}
		if len(items) == len(s.Items) {
			return s // unknown id: no-op
		}
		return State{Items: items, Total: recompute(items)}

	case Clear:
		return State{}

	default:
		return s
	}
}

func recompute(items []LineItem) float64 {
	total := 0.0
	for _, li := range items {
		total += li.Subtotal()
	}
	return total
}

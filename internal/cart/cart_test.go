package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breza/internal/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Tee " + id, Price: price, Category: "Regular Fit T-Shirts"}
}

// expectedTotal recomputes the invariant the reducer must hold.
func expectedTotal(s State) float64 {
	total := 0.0
	for _, li := range s.Items {
		total += li.Product.Price * float64(li.Quantity)
	}
	return total
}

func TestAddNewProduct(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 59.99)})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 1, s.Items[0].Quantity)
	assert.Equal(t, 59.99, s.Total)
}

func TestRepeatedAddKeepsOneLine(t *testing.T) {
	s := State{}
	for i := 0; i < 5; i++ {
		s = Apply(s, AddItem{Product: product("1", 10)})
	}

	require.Len(t, s.Items, 1, "same product id must stay a single line")
	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, 50.0, s.Total)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := State{}
	s = Apply(s, AddItem{Product: product("a", 1)})
	s = Apply(s, AddItem{Product: product("b", 2)})
	s = Apply(s, AddItem{Product: product("a", 1)})
	s = Apply(s, AddItem{Product: product("c", 3)})

	ids := []string{}
	for _, li := range s.Items {
		ids = append(ids, li.Product.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestAddVariantLastSelectionWins(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10), Color: "Black", Size: "M"})
	s = Apply(s, AddItem{Product: product("1", 10), Color: "Navy", Size: "XL"})

	require.Len(t, s.Items, 1, "different variant must not create a second line")
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, "Navy", s.Items[0].Color)
	assert.Equal(t, "XL", s.Items[0].Size)
}

func TestAddWithoutVariantKeepsExistingSelection(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10), Color: "Black", Size: "M"})
	s = Apply(s, AddItem{Product: product("1", 10)})

	assert.Equal(t, "Black", s.Items[0].Color)
	assert.Equal(t, "M", s.Items[0].Size)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, UpdateQuantity{ProductID: "1", Quantity: 7})

	assert.Equal(t, 7, s.Items[0].Quantity)
	assert.Equal(t, 70.0, s.Total)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, AddItem{Product: product("2", 5)})

	s = Apply(s, UpdateQuantity{ProductID: "1", Quantity: 0})

	require.Len(t, s.Items, 1)
	assert.Equal(t, "2", s.Items[0].Product.ID)
	assert.Equal(t, 5.0, s.Total, "total must exclude the removed line")

	s = Apply(s, UpdateQuantity{ProductID: "2", Quantity: -3})
	assert.Empty(t, s.Items)
	assert.Zero(t, s.Total)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	next := Apply(s, UpdateQuantity{ProductID: "ghost", Quantity: 4})

	if diff := cmp.Diff(s, next); diff != "" {
		t.Errorf("state changed on unknown id (-before +after):\n%s", diff)
	}
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	next := Apply(s, RemoveItem{ProductID: "ghost"})

	if diff := cmp.Diff(s, next); diff != "" {
		t.Errorf("state changed on unknown id (-before +after):\n%s", diff)
	}
}

func TestRemoveDeletesLine(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, AddItem{Product: product("2", 20)})
	s = Apply(s, RemoveItem{ProductID: "1"})

	require.Len(t, s.Items, 1)
	assert.Equal(t, "2", s.Items[0].Product.ID)
	assert.Equal(t, 20.0, s.Total)
}

func TestClearIdempotence(t *testing.T) {
	empty := Apply(State{}, Clear{})
	assert.Empty(t, empty.Items)
	assert.Zero(t, empty.Total)

	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, Clear{})
	assert.Empty(t, s.Items)
	assert.Zero(t, s.Total)

	s = Apply(s, Clear{})
	assert.Empty(t, s.Items)
	assert.Zero(t, s.Total)
}

// TestTotalInvariantAcrossSequence checks the total after every single
// transition of a mixed action sequence, not just at the end.
func TestTotalInvariantAcrossSequence(t *testing.T) {
	actions := []Action{
		AddItem{Product: product("1", 59.99)},
		AddItem{Product: product("2", 64.99), Color: "White", Size: "L"},
		AddItem{Product: product("1", 59.99)},
		UpdateQuantity{ProductID: "2", Quantity: 3},
		AddItem{Product: product("3", 29.99)},
		UpdateQuantity{ProductID: "1", Quantity: 0},
		RemoveItem{ProductID: "missing"},
		UpdateQuantity{ProductID: "3", Quantity: 2},
		RemoveItem{ProductID: "2"},
		Clear{},
	}

	s := State{}
	for i, a := range actions {
		s = Apply(s, a)
		require.Equal(t, expectedTotal(s), s.Total, "total drifted after action %d (%T)", i, a)

		ids := map[string]bool{}
		for _, li := range s.Items {
			require.GreaterOrEqual(t, li.Quantity, 1, "zero-quantity line after action %d", i)
			require.False(t, ids[li.Product.ID], "duplicate line for %s after action %d", li.Product.ID, i)
			ids[li.Product.ID] = true
		}
	}
}

// TestApplyIsPure verifies the input state is untouched by transitions.
func TestApplyIsPure(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, AddItem{Product: product("2", 20)})
	snapshot := make([]LineItem, len(s.Items))
	copy(snapshot, s.Items)

	Apply(s, AddItem{Product: product("1", 10), Color: "Navy"})
	Apply(s, UpdateQuantity{ProductID: "2", Quantity: 9})
	Apply(s, RemoveItem{ProductID: "1"})
	Apply(s, Clear{})

	if diff := cmp.Diff(snapshot, s.Items); diff != "" {
		t.Errorf("Apply mutated its input (-before +after):\n%s", diff)
	}
}

func TestUnits(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10)})
	s = Apply(s, AddItem{Product: product("1", 10)})
	s = Apply(s, AddItem{Product: product("2", 20)})

	assert.Equal(t, 3, s.Units())
	assert.Equal(t, 0, State{}.Units())
}

func TestFind(t *testing.T) {
	s := Apply(State{}, AddItem{Product: product("1", 10), Size: "M"})

	li, ok := s.Find("1")
	require.True(t, ok)
	assert.Equal(t, "M", li.Size)

	_, ok = s.Find("2")
	assert.False(t, ok)
}

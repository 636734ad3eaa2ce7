package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchReturnsAndStoresState(t *testing.T) {
	st := NewStore(nil)

	got := st.Dispatch(AddItem{Product: product("1", 59.99)})
	assert.Equal(t, 59.99, got.Total)
	assert.Equal(t, got, st.State(), "Dispatch result and State must agree")
}

func TestStoreNotifiesSubscribersInOrder(t *testing.T) {
	st := NewStore(nil)

	var seen []float64
	st.Subscribe(func(s State) {
		seen = append(seen, s.Total)
	})

	st.Dispatch(AddItem{Product: product("1", 10)})
	st.Dispatch(AddItem{Product: product("1", 10)})
	st.Dispatch(Clear{})

	assert.Equal(t, []float64{10, 20, 0}, seen)
}

func TestStoreMultipleSubscribers(t *testing.T) {
	st := NewStore(nil)

	calls := [2]int{}
	st.Subscribe(func(State) { calls[0]++ })
	st.Subscribe(func(State) { calls[1]++ })

	st.Dispatch(AddItem{Product: product("1", 10)})
	st.Dispatch(RemoveItem{ProductID: "1"})

	assert.Equal(t, [2]int{2, 2}, calls)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	st := NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				st.Dispatch(AddItem{Product: product("1", 2)})
			}
		}()
	}
	wg.Wait()

	final := st.State()
	require.Len(t, final.Items, 1)
	assert.Equal(t, 200, final.Items[0].Quantity)
	assert.Equal(t, 400.0, final.Total)
}

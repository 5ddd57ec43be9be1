package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellGetSet(t *testing.T) {
	t.Parallel()

	cell := NewCell(42)
	require.Equal(t, 42, cell.Get())

	cell.Set(7)
	require.Equal(t, 7, cell.Get())
}

func TestCellUpdate(t *testing.T) {
	t.Parallel()

	cell := NewCell(10)

	got := cell.Update(func(v int) int { return v + 5 })
	require.Equal(t, 15, got)
	require.Equal(t, 15, cell.Get())
}

func TestCellUpdateConcurrent(t *testing.T) {
	t.Parallel()

	cell := NewCell(0)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cell.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	require.Equal(t, 100, cell.Get())
}

func TestCellSubscribe(t *testing.T) {
	t.Parallel()

	cell := NewCell("initial")

	var got []string
	unsubscribe := cell.Subscribe(func(v string) {
		got = append(got, v)
	})

	cell.Set("first")
	cell.Set("second")
	require.Equal(t, []string{"first", "second"}, got)

	unsubscribe()
	cell.Set("third")
	require.Equal(t, []string{"first", "second"}, got)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestCellSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	cell := NewCell(0)

	var order []string
	cell.Subscribe(func(int) { order = append(order, "a") })
	cell.Subscribe(func(int) { order = append(order, "b") })
	cell.Subscribe(func(int) { order = append(order, "c") })

	cell.Set(1)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

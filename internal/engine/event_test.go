package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var order []int
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(nil)
	e.AddListener(func() { order = append(order, 2) })

	e.Invoke()

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, e.GetListenerCount())
}

func TestAnimationRegistryGrowsMonotonically(t *testing.T) {
	r := NewAnimationRegistry()
	calls := make([]int, 3)

	for i := range 3 {
		before := r.Len()
		r.Register(func() { calls[i]++ })
		assert.Equal(t, before+1, r.Len())
	}
	r.Register(nil)
	assert.Equal(t, 3, r.Len())

	r.Invoke()
	r.Invoke()

	assert.Equal(t, []int{2, 2, 2}, calls)
}

func TestAnimationRegistryOrder(t *testing.T) {
	r := NewAnimationRegistry()
	var order []string
	r.Register(func() { order = append(order, "flamingo") })
	r.Register(func() { order = append(order, "parrot") })

	r.Invoke()

	assert.Equal(t, []string{"flamingo", "parrot"}, order)
}

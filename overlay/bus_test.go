package overlay_test

import (
	"testing"

	"github.com/plus3/cckdebug/overlay"
	"github.com/stretchr/testify/assert"
)

func TestSignalOrderAndUnsubscribe(t *testing.T) {
	var signal overlay.Signal[int]
	var got []string

	signal.Subscribe(func(v int) { got = append(got, "a") })
	unsubscribeB := signal.Subscribe(func(v int) { got = append(got, "b") })
	signal.Subscribe(func(v int) { got = append(got, "c") })

	signal.Emit(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	unsubscribeB()
	unsubscribeB()
	got = nil
	signal.Emit(2)
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, 2, signal.Len())
}

func TestSignalChangesDuringEmit(t *testing.T) {
	var signal overlay.Signal[struct{}]
	calls := 0

	var unsubscribe func()
	unsubscribe = signal.Subscribe(func(struct{}) {
		calls++
		unsubscribe()
		signal.Subscribe(func(struct{}) { calls += 10 })
	})
	signal.Subscribe(func(struct{}) { calls += 100 })

	signal.Emit(struct{}{})
	assert.Equal(t, 101, calls, "changes apply from the next emit")

	signal.Emit(struct{}{})
	assert.Equal(t, 211, calls)
}

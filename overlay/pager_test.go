package overlay_test

import (
	"testing"

	"github.com/plus3/cckdebug/overlay"
	"github.com/stretchr/testify/assert"
)

// recordingHandler appends every lifecycle call to a shared log.
type recordingHandler struct {
	name    string
	log     *[]string
	menu    *overlay.Menu
	updates int
	subPage int
}

func (h *recordingHandler) Name() string { return h.name }

func (h *recordingHandler) Load(m *overlay.Menu) {
	h.menu = m
	*h.log = append(*h.log, "load "+h.name)
}

func (h *recordingHandler) Unload() {
	*h.log = append(*h.log, "unload "+h.name)
}

func (h *recordingHandler) Update(frame *overlay.Frame) {
	h.updates++
}

func (h *recordingHandler) NextSubPage() {
	h.subPage++
	*h.log = append(*h.log, "next "+h.name)
}

func (h *recordingHandler) PreviousSubPage() {
	h.subPage--
	*h.log = append(*h.log, "previous "+h.name)
}

func newHandlers(log *[]string, names ...string) []overlay.Handler {
	handlers := make([]overlay.Handler, len(names))
	for i, name := range names {
		handlers[i] = &recordingHandler{name: name, log: log}
	}
	return handlers
}

func TestPagerSingleHandler(t *testing.T) {
	var log []string
	pager := overlay.NewPager(newHandlers(&log, "Avatar")...)
	only := pager.Active()

	for i := 0; i < 5; i++ {
		_, _, ok := pager.Step(i%2 == 0)
		assert.False(t, ok)
		assert.Same(t, only, pager.Active())
	}
}

func TestPagerEmpty(t *testing.T) {
	pager := overlay.NewPager()

	assert.Nil(t, pager.Active())
	_, _, ok := pager.Step(true)
	assert.False(t, ok)
}

func TestPagerWrapsAround(t *testing.T) {
	var log []string
	handlers := newHandlers(&log, "Avatar", "Spawnable", "Misc")
	pager := overlay.NewPager(handlers...)

	t.Run("next n times returns to start", func(t *testing.T) {
		start := pager.Active()
		for range pager.Len() {
			_, _, ok := pager.Step(true)
			assert.True(t, ok)
		}
		assert.Same(t, start, pager.Active())
	})

	t.Run("previous wraps to the last handler", func(t *testing.T) {
		from, to, ok := pager.Step(false)
		assert.True(t, ok)
		assert.Same(t, handlers[0], from)
		assert.Same(t, handlers[2], to)
		assert.Equal(t, 2, pager.Index())
	})

	t.Run("previous then next is a no-op", func(t *testing.T) {
		start := pager.Active()
		pager.Step(false)
		pager.Step(true)
		assert.Same(t, start, pager.Active())
	})
}

func TestPagerAddKeepsActive(t *testing.T) {
	var log []string
	handlers := newHandlers(&log, "Avatar", "Spawnable")
	pager := overlay.NewPager(handlers[0])
	pager.Add(handlers[1])

	assert.Same(t, handlers[0], pager.Active())
	assert.Equal(t, 2, pager.Len())
	assert.Len(t, pager.Handlers(), 2)
}

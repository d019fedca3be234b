package overlay_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
	"github.com/stretchr/testify/assert"
)

func newCapturedCache(tolerance float32) (*overlay.FieldCache, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return overlay.NewFieldCache(tolerance, logger), &buf
}

func TestShouldRedrawUnchangedValues(t *testing.T) {
	values := map[string]overlay.Value{
		"float":  overlay.Float(1.25),
		"bool":   overlay.Bool(true),
		"int":    overlay.Int(42),
		"string": overlay.String("hello"),
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			cache := overlay.NewFieldCache(0, slog.Default())
			field := ui.WidgetID(7)

			assert.True(t, cache.ShouldRedraw(field, v), "first write always redraws")
			assert.False(t, cache.ShouldRedraw(field, v), "same value is skipped")
		})
	}
}

func TestShouldRedrawChangedValues(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())

	assert.True(t, cache.ShouldRedraw(1, overlay.Int(1)))
	assert.True(t, cache.ShouldRedraw(1, overlay.Int(2)))
	assert.True(t, cache.ShouldRedraw(1, overlay.String("2")), "kind change is a change")
	assert.True(t, cache.ShouldRedraw(1, overlay.Bool(false)))
	assert.True(t, cache.ShouldRedraw(1, overlay.Bool(true)))
	assert.False(t, cache.ShouldRedraw(1, overlay.Bool(true)))
}

func TestShouldRedrawFloatTolerance(t *testing.T) {
	t.Run("approximately", func(t *testing.T) {
		cache := overlay.NewFieldCache(0, slog.Default())

		assert.True(t, cache.ShouldRedraw(1, overlay.Float(1000)))
		assert.False(t, cache.ShouldRedraw(1, overlay.Float(1000.0001)), "jitter below relative tolerance")
		assert.True(t, cache.ShouldRedraw(1, overlay.Float(1000.5)))
		assert.True(t, cache.ShouldRedraw(2, overlay.Float(0)))
		assert.False(t, cache.ShouldRedraw(2, overlay.Float(0)))
	})

	t.Run("absolute", func(t *testing.T) {
		cache := overlay.NewFieldCache(0.01, slog.Default())

		assert.True(t, cache.ShouldRedraw(1, overlay.Float(1)))
		assert.False(t, cache.ShouldRedraw(1, overlay.Float(1.005)))
		assert.True(t, cache.ShouldRedraw(1, overlay.Float(1.5)))
	})
}

func TestShouldRedrawWritesThrough(t *testing.T) {
	cache := overlay.NewFieldCache(0.01, slog.Default())

	assert.True(t, cache.ShouldRedraw(1, overlay.Float(1.000)))
	assert.False(t, cache.ShouldRedraw(1, overlay.Float(1.008)))
	// Compared against 1.008, which was stored even though it was skipped.
	assert.False(t, cache.ShouldRedraw(1, overlay.Float(1.016)))
}

func TestShouldRedrawParams(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())
	field := ui.WidgetID(3)

	assert.True(t, cache.ShouldRedrawParams(field, overlay.Int(1), overlay.String("a")))
	assert.False(t, cache.ShouldRedrawParams(field, overlay.Int(1), overlay.String("a")))

	assert.True(t, cache.ShouldRedrawParams(field, overlay.Int(1), overlay.String("a"), overlay.Bool(true)),
		"length change redraws")
	assert.True(t, cache.ShouldRedrawParams(field, overlay.Int(1)), "shorter tuple redraws")

	assert.True(t, cache.ShouldRedrawParams(field, overlay.Int(2)), "position change redraws")
	assert.False(t, cache.ShouldRedrawParams(field, overlay.Int(2)))

	assert.True(t, cache.ShouldRedrawParams(field), "empty tuple differs in length")
	assert.False(t, cache.ShouldRedrawParams(field))
}

func TestShouldRedrawParamsCopiesInput(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())
	values := []overlay.Value{overlay.Int(1), overlay.Int(2)}

	assert.True(t, cache.ShouldRedrawParams(1, values...))
	values[0] = overlay.Int(9)
	assert.True(t, cache.ShouldRedrawParams(1, values...), "cached tuple must not alias the caller's slice")
}

func TestSingleAndParamsAreIndependent(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())

	assert.True(t, cache.ShouldRedraw(1, overlay.Int(1)))
	assert.True(t, cache.ShouldRedrawParams(1, overlay.Int(1)))
	assert.False(t, cache.ShouldRedraw(1, overlay.Int(1)))
}

func TestForget(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())

	cache.ShouldRedraw(1, overlay.String("x"))
	cache.ShouldRedrawParams(1, overlay.String("x"))
	cache.ShouldRedraw(2, overlay.String("y"))

	cache.Forget(1)

	assert.True(t, cache.ShouldRedraw(1, overlay.String("x")), "forgotten field behaves as first write")
	assert.True(t, cache.ShouldRedrawParams(1, overlay.String("x")))
	assert.False(t, cache.ShouldRedraw(2, overlay.String("y")), "other fields are kept")

	cache.Forget(99)
}

func TestUncoveredKindWarnsOnce(t *testing.T) {
	cache, buf := newCapturedCache(0)

	type vec3 struct{ X, Y, Z float32 }
	v := overlay.Other(vec3{1, 2, 3})

	assert.True(t, cache.ShouldRedraw(1, v))
	assert.True(t, cache.ShouldRedraw(1, v), "uncovered kinds always redraw")
	assert.True(t, cache.ShouldRedrawParams(2, v))
	assert.True(t, cache.ShouldRedrawParams(2, v))

	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
	assert.Contains(t, buf.String(), "kind=other")
}

func TestMismatchedKindsDoNotWarn(t *testing.T) {
	cache, buf := newCapturedCache(0)

	cache.ShouldRedraw(1, overlay.Int(1))
	assert.True(t, cache.ShouldRedraw(1, overlay.Float(1)))
	cache.ShouldRedraw(1, overlay.Other("x"))
	assert.True(t, cache.ShouldRedraw(1, overlay.String("x")))

	assert.Empty(t, buf.String())
}

func TestCacheStats(t *testing.T) {
	cache := overlay.NewFieldCache(0, slog.Default())

	cache.ShouldRedraw(1, overlay.Int(1))
	cache.ShouldRedraw(1, overlay.Int(1))
	cache.ShouldRedraw(2, overlay.Int(1))
	cache.ShouldRedrawParams(3, overlay.Int(1))

	assert.Equal(t, overlay.CacheStats{
		Fields:      2,
		ParamFields: 1,
		Redraws:     3,
		Skips:       1,
	}, cache.Stats())
}

package overlay

import (
	"log/slog"

	"github.com/kamstrup/intmap"
	"github.com/plus3/cckdebug/ui"
)

// CacheStats reports the size and effectiveness of a FieldCache.
type CacheStats struct {
	Fields      int
	ParamFields int
	Redraws     int64
	Skips       int64
}

// FieldCache remembers the last value rendered into each text widget so
// unchanged telemetry does not rewrite the text every frame.
// Entries live until Forget is called for the widget.
type FieldCache struct {
	single *intmap.Map[ui.WidgetID, Value]
	params *intmap.Map[ui.WidgetID, []Value]
	cmp    comparer
	logger *slog.Logger
	warned bool

	redraws int64
	skips   int64
}

// NewFieldCache creates an empty cache. A tolerance > 0 replaces the relative
// float comparison with an absolute one.
func NewFieldCache(tolerance float32, logger *slog.Logger) *FieldCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldCache{
		single: intmap.New[ui.WidgetID, Value](128),
		params: intmap.New[ui.WidgetID, []Value](64),
		cmp:    comparer{tolerance: tolerance},
		logger: logger,
	}
}

// ShouldRedraw reports whether field must be re-rendered with value and
// records value as the field's last rendered value.
func (c *FieldCache) ShouldRedraw(field ui.WidgetID, value Value) bool {
	prev, ok := c.single.Get(field)
	c.single.Put(field, value)
	if ok && !c.differs(prev, value) {
		c.skips++
		return false
	}
	c.redraws++
	return true
}

// ShouldRedrawParams is ShouldRedraw for templated text with positional values.
func (c *FieldCache) ShouldRedrawParams(field ui.WidgetID, values ...Value) bool {
	prev, ok := c.params.Get(field)
	c.params.Put(field, append([]Value(nil), values...))
	if ok && len(prev) == len(values) {
		changed := false
		for i := range values {
			if c.differs(prev[i], values[i]) {
				changed = true
			}
		}
		if !changed {
			c.skips++
			return false
		}
	}
	c.redraws++
	return true
}

// Forget drops everything cached for field.
func (c *FieldCache) Forget(field ui.WidgetID) {
	c.single.Del(field)
	c.params.Del(field)
}

// Stats returns the current entry counts and redraw counters.
func (c *FieldCache) Stats() CacheStats {
	return CacheStats{
		Fields:      c.single.Len(),
		ParamFields: c.params.Len(),
		Redraws:     c.redraws,
		Skips:       c.skips,
	}
}

func (c *FieldCache) differs(prev, next Value) bool {
	changed, uncovered := c.cmp.changed(prev, next)
	if uncovered && !c.warned {
		c.warned = true
		c.logger.Warn("compared values of a kind without a comparison rule",
			slog.String("kind", prev.Kind().String()),
			slog.String("cached", prev.GoString()),
			slog.String("value", next.GoString()),
		)
	}
	return changed
}

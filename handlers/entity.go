package handlers

import (
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

// cursor selects one entity of a list whose length changes between frames.
type cursor struct {
	index   int
	current string
}

// resolve wraps the index into [0, n) and returns it, or -1 when n is zero.
func (c *cursor) resolve(n int) int {
	if n == 0 {
		c.index = 0
		return -1
	}
	c.index = ((c.index % n) + n) % n
	return c.index
}

func (c *cursor) next()     { c.index++ }
func (c *cursor) previous() { c.index-- }

// inspect makes owner the inspected entity, announcing the switch on the bus
// and listing its visualizers in between.
func inspect(m *overlay.Menu, owner string, pointers, triggers []string) {
	bus := m.Bus()
	bus.SwitchedInspectedEntity.Emit(false)
	for _, target := range pointers {
		m.AddCurrentVisualizer(m.Visualizers().Ensure(overlay.PointerVisualizer, owner, target))
	}
	for _, target := range triggers {
		m.AddCurrentVisualizer(m.Visualizers().Ensure(overlay.TriggerVisualizer, owner, target))
	}
	bus.SwitchedInspectedEntity.Emit(true)
}

// showEmpty hides the categories while the list is empty, dropping the
// previously inspected entity's visualizers from the toggles.
func showEmpty(m *overlay.Menu, c *cursor) {
	if c.current != "" {
		inspect(m, "", nil, nil)
		c.current = ""
	}
	m.ShowControls(false)
	m.ToggleCategories(false)
}

// parameterRows keeps one category row per parameter, rebuilding the rows
// when the parameter count changes.
type parameterRows struct {
	category *ui.Widget
	keys     []*ui.Widget
	values   []*ui.Widget
}

func (r *parameterRows) reset(category *ui.Widget) {
	r.category = category
	r.keys = r.keys[:0]
	r.values = r.values[:0]
}

func (r *parameterRows) sync(m *overlay.Menu, params []Parameter) {
	if len(params) != len(r.values) {
		m.ClearCategory(r.category)
		r.keys = r.keys[:0]
		r.values = r.values[:0]
		for range params {
			key, value := m.AddCategoryKeyValue(r.category)
			r.keys = append(r.keys, key)
			r.values = append(r.values, value)
		}
	}
	for i, p := range params {
		m.SetText(r.keys[i], overlay.String(p.Name))
		m.SetText(r.values[i], p.Value)
	}
}

// setPosition shows "i/n" between the sub-page buttons.
func setPosition(m *overlay.Menu, index, n int) {
	m.SetTextf(m.ControlsExtra(), "%d/%d", overlay.Int(index+1), overlay.Int(n))
}

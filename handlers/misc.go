package handlers

import (
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

// LoopStatser reports frame loop statistics. *overlay.Loop implements it.
type LoopStatser interface {
	Stats() overlay.LoopStats
}

// Misc shows the overlay's own state: frame timing, field cache hit rates,
// visualizer counts and per-system durations.
type Misc struct {
	loop LoopStatser
	menu *overlay.Menu

	frame     *ui.Widget
	deltaTime *ui.Widget
	handlers  *ui.Widget

	fields      *ui.Widget
	paramFields *ui.Widget
	redraws     *ui.Widget
	skips       *ui.Widget

	pointers *ui.Widget
	triggers *ui.Widget

	systems parameterRows
}

// NewMisc creates the statistics page. loop may be nil, in which case the
// systems category stays empty.
func NewMisc(loop LoopStatser) *Misc {
	return &Misc{loop: loop}
}

func (h *Misc) Name() string { return "Misc" }

func (h *Misc) Load(m *overlay.Menu) {
	h.menu = m

	m.AddNewDebugger("Misc")
	m.ShowControls(false)

	overlayCategory := m.AddCategory("Overlay")
	h.frame = m.AddCategoryEntry(overlayCategory, "Frame")
	h.deltaTime = m.AddCategoryEntry(overlayCategory, "Delta Time (ms)")
	h.handlers = m.AddCategoryEntry(overlayCategory, "Handlers")

	cache := m.AddCategory("Field Cache")
	h.fields = m.AddCategoryEntry(cache, "Fields")
	h.paramFields = m.AddCategoryEntry(cache, "Formatted Fields")
	h.redraws = m.AddCategoryEntry(cache, "Redraws")
	h.skips = m.AddCategoryEntry(cache, "Skips")

	visualizers := m.AddCategory("Visualizers")
	h.pointers = m.AddCategoryEntry(visualizers, "Pointers")
	h.triggers = m.AddCategoryEntry(visualizers, "Triggers")

	h.systems.reset(m.AddCategory("Systems"))
}

func (h *Misc) Unload() {}

func (h *Misc) Update(frame *overlay.Frame) {
	m := h.menu

	m.SetText(h.frame, overlay.Int(int(frame.Number)))
	m.SetText(h.deltaTime, overlay.Float(float32(frame.DeltaTime*1000)))
	m.SetText(h.handlers, overlay.Int(m.Pager().Len()))

	stats := m.Cache().Stats()
	m.SetText(h.fields, overlay.Int(stats.Fields))
	m.SetText(h.paramFields, overlay.Int(stats.ParamFields))
	m.SetText(h.redraws, overlay.Int(int(stats.Redraws)))
	m.SetText(h.skips, overlay.Int(int(stats.Skips)))

	v := m.Visualizers()
	m.SetTextf(h.pointers, "%d/%d enabled",
		overlay.Int(v.CountEnabled(overlay.PointerVisualizer)), overlay.Int(v.Len(overlay.PointerVisualizer)))
	m.SetTextf(h.triggers, "%d/%d enabled",
		overlay.Int(v.CountEnabled(overlay.TriggerVisualizer)), overlay.Int(v.Len(overlay.TriggerVisualizer)))

	if h.loop == nil {
		return
	}
	systems := h.loop.Stats().Systems
	rows := make([]Parameter, len(systems))
	for i, s := range systems {
		rows[i] = Parameter{Name: s.Name, Value: overlay.String(s.AvgDuration.String())}
	}
	h.systems.sync(m, rows)
}

func (h *Misc) NextSubPage()     {}
func (h *Misc) PreviousSubPage() {}

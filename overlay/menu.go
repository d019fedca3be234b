// Package overlay implements the debugger menu core: change-tracked text
// fields, the handler pager, the signal bus, and the pointer/trigger
// visualizer toggles.
package overlay

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/plus3/cckdebug/ui"
)

// ErrMissingWidget is returned by NewMenu when the panel lacks a required widget.
var ErrMissingWidget = errors.New("missing widget")

// Colors used for the toggle checkmarks.
type Colors struct {
	Pointer  ui.Color
	Trigger  ui.Color
	Reset    ui.Color
	Pinned   ui.Color
	Unpinned ui.Color
	Disabled ui.Color
}

// Options configures a Menu.
type Options struct {
	Logger *slog.Logger
	// Scale is the local scale applied when the panel is docked to its anchor.
	Scale float32
	// Margin is the horizontal gap between the anchor and the docked panel.
	Margin float32
	// FloatTolerance replaces approximate float comparison when > 0.
	FloatTolerance float32
	Colors         Colors

	Players    NameResolver
	Spawnables NameResolver
	Avatars    NameResolver
}

// DefaultOptions returns the docking and colour defaults.
func DefaultOptions() Options {
	return Options{
		Scale:  0.0004,
		Margin: 0.5,
		Colors: Colors{
			Pointer:  ui.Blue,
			Trigger:  ui.Yellow,
			Reset:    ui.Orange,
			Pinned:   ui.Green,
			Unpinned: ui.White,
			Disabled: ui.Gray,
		},
	}
}

// maxTogglePasses bounds RefreshToggles.
const maxTogglePasses = 4

// Menu is the debugger panel controller. It owns the field cache, the pager,
// the visualizer registry and the bus; handlers reach everything through it.
type Menu struct {
	opts     Options
	logger   *slog.Logger
	tree     *ui.Tree
	commands *Commands

	bus         *Bus
	cache       *FieldCache
	pager       *Pager
	visualizers *Visualizers

	panel  *ui.Widget
	anchor *ui.Widget

	title         *ui.Widget
	controls      *ui.Widget
	controlsExtra *ui.Widget
	content       *ui.Widget
	categoryTmpl  *ui.Widget
	entryTmpl     *ui.Widget

	pin     *Toggle
	pointer *Toggle
	trigger *Toggle
	reset   *Toggle

	currentPointers []*Visualizer
	currentTriggers []*Visualizer

	quickMenuOpen bool
}

// NewMenu binds a menu to panel, a widget built by ui.NewDebuggerPanel. The
// panel's current parent becomes the anchor it docks to when unpinned.
func NewMenu(tree *ui.Tree, panel *ui.Widget, commands *Commands, opts Options) (*Menu, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "menu"))

	m := &Menu{
		opts:        opts,
		logger:      logger,
		tree:        tree,
		commands:    commands,
		bus:         NewBus(),
		cache:       NewFieldCache(opts.FloatTolerance, logger),
		pager:       NewPager(),
		visualizers: NewVisualizers(),
		panel:       panel,
		anchor:      panel.Parent(),
	}

	widgets := map[string]**ui.Widget{
		ui.PathTitle:         &m.title,
		ui.PathControls:      &m.controls,
		ui.PathControlsExtra: &m.controlsExtra,
		ui.PathContent:       &m.content,
		ui.PathCategoryTmpl:  &m.categoryTmpl,
		ui.PathEntryTmpl:     &m.entryTmpl,
	}
	for path, dst := range widgets {
		w := panel.Find(path)
		if w == nil {
			return nil, fmt.Errorf("overlay: %q: %w", path, ErrMissingWidget)
		}
		*dst = w
	}

	buttons := []struct {
		path   string
		signal *Signal[struct{}]
	}{
		{ui.PathMainPrevious, &m.bus.MainPreviousPage},
		{ui.PathMainNext, &m.bus.MainNextPage},
		{ui.PathControlPrevious, &m.bus.ControlsPreviousPage},
		{ui.PathControlNext, &m.bus.ControlsNextPage},
	}
	for _, b := range buttons {
		w := panel.Find(b.path)
		if w == nil {
			return nil, fmt.Errorf("overlay: %q: %w", b.path, ErrMissingWidget)
		}
		signal := b.signal
		w.SetActive(true)
		w.OnClick = func() { signal.Emit(struct{}{}) }
	}

	toggles := []struct {
		path   string
		dst    **Toggle
		signal *Signal[bool]
	}{
		{ui.PathPinToggle, &m.pin, &m.bus.Pinned},
		{ui.PathPointerToggle, &m.pointer, &m.bus.PointerToggled},
		{ui.PathTriggerToggle, &m.trigger, &m.bus.TriggerToggled},
		{ui.PathResetToggle, &m.reset, &m.bus.ResetToggled},
	}
	for _, tg := range toggles {
		w := panel.Find(tg.path)
		if w == nil || w.Find(ui.PathCheckmark) == nil {
			return nil, fmt.Errorf("overlay: %q: %w", tg.path+"/"+ui.PathCheckmark, ErrMissingWidget)
		}
		*tg.dst = newToggle(w, tg.signal)
	}
	m.pin.SetVisible(true)
	for _, t := range []*Toggle{m.pointer, m.trigger, m.reset} {
		t.SetVisible(false)
		t.setColor(opts.Colors.Disabled)
	}

	tree.OnDestroy(func(w *ui.Widget) {
		if w.Kind == ui.KindText {
			m.bus.TextDestroyed.Emit(w.ID)
		}
	})
	m.subscribe()
	return m, nil
}

func (m *Menu) subscribe() {
	m.bus.TextDestroyed.Subscribe(m.cache.Forget)

	m.bus.QuickMenuShown.Subscribe(func(shown bool) {
		m.quickMenuOpen = shown
		if m.pin.IsOn() {
			return
		}
		m.panel.SetActive(shown)
	})

	m.bus.MainNextPage.Subscribe(func(struct{}) { m.switchHandler(true) })
	m.bus.MainPreviousPage.Subscribe(func(struct{}) { m.switchHandler(false) })

	m.bus.ControlsNextPage.Subscribe(func(struct{}) {
		if h := m.pager.Active(); h != nil {
			h.NextSubPage()
		}
	})
	m.bus.ControlsPreviousPage.Subscribe(func(struct{}) {
		if h := m.pager.Active(); h != nil {
			h.PreviousSubPage()
		}
	})

	m.bus.Pinned.Subscribe(func(pinned bool) {
		if !pinned {
			m.dock()
			return
		}
		m.panel.SetActive(true)
		m.panel.SetParent(nil, true)
		m.pin.setColor(m.opts.Colors.Pinned)
	})

	m.bus.PointerToggled.Subscribe(func(on bool) {
		m.pointer.setColor(m.toggleColor(on, m.opts.Colors.Pointer))
		for _, v := range m.currentPointers {
			v.enabled = on
		}
		m.updateResetToggle()
	})

	m.bus.TriggerToggled.Subscribe(func(on bool) {
		m.trigger.setColor(m.toggleColor(on, m.opts.Colors.Trigger))
		for _, v := range m.currentTriggers {
			v.enabled = on
		}
		m.updateResetToggle()
	})

	m.bus.ResetToggled.Subscribe(func(on bool) {
		m.reset.SetVisible(on)
		m.reset.setColor(m.toggleColor(on, m.opts.Colors.Reset))
		if on {
			return
		}
		m.visualizers.DisableAll(PointerVisualizer)
		m.visualizers.DisableAll(TriggerVisualizer)
		m.pointer.SetOn(false)
		m.trigger.SetOn(false)
	})

	m.bus.SwitchedInspectedEntity.Subscribe(func(finished bool) {
		if !finished {
			m.currentPointers = m.currentPointers[:0]
			m.currentTriggers = m.currentTriggers[:0]
			return
		}
		m.RefreshToggles()
	})
}

func (m *Menu) toggleColor(on bool, c ui.Color) ui.Color {
	if on {
		return c
	}
	return m.opts.Colors.Disabled
}

// Register adds a handler to the pager. Call before Start.
func (m *Menu) Register(h Handler) {
	m.pager.Add(h)
}

// Start docks the panel to its anchor and loads the first handler.
func (m *Menu) Start() {
	m.dock()
	if h := m.pager.Active(); h != nil {
		m.logger.Debug("loading handler", slog.String("handler", h.Name()))
		h.Load(m)
	}
}

// Execute advances the active handler by one frame.
func (m *Menu) Execute(frame *Frame) {
	if h := m.pager.Active(); h != nil {
		h.Update(frame)
	}
}

func (m *Menu) switchHandler(next bool) {
	if m.pager.Len() <= 1 {
		return
	}
	m.pager.Active().Unload()

	m.bus.SwitchedInspectedEntity.Emit(false)
	m.bus.SwitchedInspectedEntity.Emit(true)

	m.ShowControls(false)

	_, to, _ := m.pager.Step(next)
	m.logger.Debug("loading handler", slog.String("handler", to.Name()))
	to.Load(m)
}

// dock re-parents the panel to its anchor at the configured offset and scale.
func (m *Menu) dock() {
	m.panel.SetParent(m.anchor, false)
	m.panel.Local = ui.Transform{Rotation: ui.Identity().Rotation, Scale: m.opts.Scale}
	m.panel.Anchored = [2]float32{-m.opts.Margin - m.panel.Width*m.opts.Scale/2, 0}
	m.panel.SetActive(m.quickMenuOpen)
	m.pin.setColor(m.opts.Colors.Unpinned)
}

// SetQuickMenuOpen forwards the host quick menu visibility.
func (m *Menu) SetQuickMenuOpen(open bool) {
	m.bus.QuickMenuShown.Emit(open)
}

// Flip sets a toggle as a user would and re-evaluates the derived toggles.
func (m *Menu) Flip(kind ToggleKind, on bool) {
	m.Toggle(kind).SetOn(on)
	m.RefreshToggles()
}

// SetVisualizerEnabled enables or disables a single visualizer and
// re-evaluates the derived toggles.
func (m *Menu) SetVisualizerEnabled(v *Visualizer, enabled bool) {
	v.enabled = enabled
	m.RefreshToggles()
}

// AddCurrentVisualizer lists v as belonging to the inspected entity. Handlers
// call it between SwitchedInspectedEntity(false) and (true).
func (m *Menu) AddCurrentVisualizer(v *Visualizer) {
	switch v.Kind {
	case PointerVisualizer:
		m.currentPointers = append(m.currentPointers, v)
	case TriggerVisualizer:
		m.currentTriggers = append(m.currentTriggers, v)
	}
}

// ForgetVisualizers drops every visualizer owned by owner, including those of
// the inspected entity, and re-evaluates the toggles.
func (m *Menu) ForgetVisualizers(owner string) {
	m.visualizers.Forget(owner)
	owned := func(v *Visualizer) bool { return v.Owner == owner }
	m.currentPointers = slices.DeleteFunc(m.currentPointers, owned)
	m.currentTriggers = slices.DeleteFunc(m.currentTriggers, owned)
	m.RefreshToggles()
}

// RefreshToggles applies the pointer, trigger and reset rules until the
// toggle states stop changing.
func (m *Menu) RefreshToggles() {
	for range maxTogglePasses {
		before := m.toggleState()
		m.updatePointerToggle()
		m.updateTriggerToggle()
		m.updateResetToggle()
		if m.toggleState() == before {
			return
		}
	}
	m.logger.Warn("toggle states did not settle", slog.Int("passes", maxTogglePasses))
}

type toggleState struct {
	pointer, trigger, reset                      bool
	pointerVisible, triggerVisible, resetVisible bool
}

func (m *Menu) toggleState() toggleState {
	return toggleState{
		pointer:        m.pointer.IsOn(),
		trigger:        m.trigger.IsOn(),
		reset:          m.reset.IsOn(),
		pointerVisible: m.pointer.Visible(),
		triggerVisible: m.trigger.Visible(),
		resetVisible:   m.reset.Visible(),
	}
}

func (m *Menu) updateResetToggle() {
	active := m.visualizers.HasActive(PointerVisualizer) || m.visualizers.HasActive(TriggerVisualizer)
	if m.reset.IsOn() && !active {
		m.reset.SetOn(false)
	} else if !m.reset.IsOn() && active {
		m.reset.SetOn(true)
	}
}

func (m *Menu) updatePointerToggle() {
	updateEntityToggle(m.pointer, m.reset, m.currentPointers)
}

func (m *Menu) updateTriggerToggle() {
	updateEntityToggle(m.trigger, m.reset, m.currentTriggers)
}

// updateEntityToggle shows toggle only when the entity has visualizers, turns
// it off when any of them is disabled, and on when all are enabled while
// reset is off.
func updateEntityToggle(toggle, reset *Toggle, list []*Visualizer) {
	has := len(list) > 0
	toggle.SetVisible(has)
	if toggle.IsOn() && anyDisabled(list) {
		toggle.SetOn(false)
	} else if !reset.IsOn() && has && allEnabled(list) {
		toggle.SetOn(true)
	}
}

// AddNewDebugger titles the panel and destroys every category.
func (m *Menu) AddNewDebugger(title string) {
	m.title.SetText(title)
	for _, category := range m.content.Children() {
		m.commands.Destroy(category)
	}
}

// ToggleCategories shows or hides every category.
func (m *Menu) ToggleCategories(shown bool) {
	for _, category := range m.content.Children() {
		if category.Active != shown {
			category.SetActive(shown)
		}
	}
}

// AddCategory creates a titled category at the end of the content list.
func (m *Menu) AddCategory(name string) *ui.Widget {
	category := m.tree.Instantiate(m.categoryTmpl, m.content)
	category.Find(ui.PathCategoryHeader).SetText(name)
	category.SetActive(true)
	return category
}

// AddCategoryEntry adds a row with a fixed key and returns its value text.
func (m *Menu) AddCategoryEntry(category *ui.Widget, name string) *ui.Widget {
	entry := m.newEntry(category)
	entry.Find(ui.PathEntryKey).SetText(name)
	return entry.Find(ui.PathEntryValue)
}

// AddCategoryKeyValue adds a row whose key is also variable and returns both
// texts. The value starts empty.
func (m *Menu) AddCategoryKeyValue(category *ui.Widget) (key, value *ui.Widget) {
	entry := m.newEntry(category)
	value = entry.Find(ui.PathEntryValue)
	value.SetText("")
	return entry.Find(ui.PathEntryKey), value
}

func (m *Menu) newEntry(category *ui.Widget) *ui.Widget {
	entry := m.tree.Instantiate(m.entryTmpl, category.Find(ui.PathCategoryEntries))
	entry.SetActive(true)
	return entry
}

// ClearCategory destroys every row of category at the end of the frame.
func (m *Menu) ClearCategory(category *ui.Widget) {
	for _, entry := range category.Find(ui.PathCategoryEntries).Children() {
		m.commands.Destroy(entry)
	}
}

// ShowControls shows or hides the sub-page controls.
func (m *Menu) ShowControls(show bool) {
	if m.controls.Active != show {
		m.controls.SetActive(show)
	}
}

// SetControlsExtra sets the text between the sub-page buttons.
func (m *Menu) SetControlsExtra(extra string) {
	m.controlsExtra.SetText(extra)
}

// SetText writes v into w unless w already shows an equivalent value.
func (m *Menu) SetText(w *ui.Widget, v Value) {
	if m.cache.ShouldRedraw(w.ID, v) {
		w.SetText(v.String())
	}
}

// SetTextf formats values into w with fmt verbs unless none of them changed.
// Floats and ints are passed as numbers, everything else as display strings.
func (m *Menu) SetTextf(w *ui.Widget, format string, values ...Value) {
	if !m.cache.ShouldRedrawParams(w.ID, values...) {
		return
	}
	args := make([]any, len(values))
	for i, v := range values {
		switch v.Kind() {
		case KindFloat:
			args[i] = v.Float()
		case KindInt:
			args[i] = v.Int()
		default:
			args[i] = v.String()
		}
	}
	w.SetText(fmt.Sprintf(format, args...))
}

// Username resolves a player id.
func (m *Menu) Username(id string) string {
	return DisplayName(m.opts.Players, id, false)
}

// SpawnableName resolves a spawnable id.
func (m *Menu) SpawnableName(id string) string {
	return DisplayName(m.opts.Spawnables, id, true)
}

// AvatarName resolves an avatar id.
func (m *Menu) AvatarName(id string) string {
	return DisplayName(m.opts.Avatars, id, true)
}

// Toggle returns the toggle of the given kind.
func (m *Menu) Toggle(kind ToggleKind) *Toggle {
	switch kind {
	case PointerToggle:
		return m.pointer
	case TriggerToggle:
		return m.trigger
	case ResetToggle:
		return m.reset
	}
	return m.pin
}

// Bus returns the menu's signals.
func (m *Menu) Bus() *Bus { return m.bus }

// Cache returns the field cache behind SetText.
func (m *Menu) Cache() *FieldCache { return m.cache }

// Pager returns the registered handlers.
func (m *Menu) Pager() *Pager { return m.pager }

// Visualizers returns every visualizer created this session.
func (m *Menu) Visualizers() *Visualizers { return m.visualizers }

// Panel returns the debugger panel root.
func (m *Menu) Panel() *ui.Widget { return m.panel }

// Title returns the header text widget.
func (m *Menu) Title() *ui.Widget { return m.title }

// Controls returns the sub-page controls row.
func (m *Menu) Controls() *ui.Widget { return m.controls }

// ControlsExtra returns the text widget between the sub-page buttons.
func (m *Menu) ControlsExtra() *ui.Widget { return m.controlsExtra }

// Content returns the container that holds the categories.
func (m *Menu) Content() *ui.Widget { return m.content }

// Logger returns the menu's logger.
func (m *Menu) Logger() *slog.Logger { return m.logger }

// CurrentVisualizers returns the inspected entity's visualizers of kind.
func (m *Menu) CurrentVisualizers(kind VisualizerKind) []*Visualizer {
	if kind == TriggerVisualizer {
		return m.currentTriggers
	}
	return m.currentPointers
}

package overlay

import "github.com/plus3/cckdebug/ui"

// ToggleKind names the four toggles of the menu.
type ToggleKind uint8

const (
	PinToggle ToggleKind = iota
	PointerToggle
	TriggerToggle
	ResetToggle
)

func (k ToggleKind) String() string {
	switch k {
	case PinToggle:
		return "pin"
	case PointerToggle:
		return "pointer"
	case TriggerToggle:
		return "trigger"
	case ResetToggle:
		return "reset"
	}
	return "unknown"
}

// Toggle is a boolean UI control bound to a toggle widget, its checkmark image
// and the signal raised when the value changes.
type Toggle struct {
	widget    *ui.Widget
	checkmark *ui.Widget
	changed   *Signal[bool]
	on        bool

	dispatching bool
}

func newToggle(widget *ui.Widget, changed *Signal[bool]) *Toggle {
	return &Toggle{
		widget:    widget,
		checkmark: widget.Find(ui.PathCheckmark),
		changed:   changed,
	}
}

// IsOn returns the current value.
func (t *Toggle) IsOn() bool {
	return t.on
}

// SetOn changes the value and raises the change signal when it differs.
// A subscriber setting the same toggle from inside that signal only stores
// the value.
func (t *Toggle) SetOn(on bool) {
	if t.on == on {
		return
	}
	t.on = on
	if t.dispatching {
		return
	}
	t.dispatching = true
	defer func() { t.dispatching = false }()
	t.changed.Emit(on)
}

// Visible reports whether the toggle widget is shown.
func (t *Toggle) Visible() bool {
	return t.widget.Active
}

// SetVisible shows or hides the toggle widget.
func (t *Toggle) SetVisible(visible bool) {
	t.widget.SetActive(visible)
}

// Color returns the checkmark colour.
func (t *Toggle) Color() ui.Color {
	return t.checkmark.Color
}

func (t *Toggle) setColor(c ui.Color) {
	t.checkmark.Color = c
}

// Widget returns the toggle widget.
func (t *Toggle) Widget() *ui.Widget {
	return t.widget
}

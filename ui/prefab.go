package ui

// Paths inside the debugger panel built by NewDebuggerPanel.
const (
	PathTitle           = "Header/Title"
	PathMainPrevious    = "Header/Previous"
	PathMainNext        = "Header/Next"
	PathPinToggle       = "TogglesView/Pin"
	PathPointerToggle   = "TogglesView/Pointer"
	PathTriggerToggle   = "TogglesView/Trigger"
	PathResetToggle     = "TogglesView/Reset"
	PathCheckmark       = "Checkmark"
	PathControls        = "Controls"
	PathControlsExtra   = "Controls/Extra"
	PathControlPrevious = "Controls/Previous"
	PathControlNext     = "Controls/Next"
	PathContent         = "Scroll View/Viewport/Content"
	PathCategoryTmpl    = "Templates/Template_Category"
	PathEntryTmpl       = "Templates/Template_CategoryEntry"

	// Relative to a category / entry instance.
	PathCategoryHeader  = "Header"
	PathCategoryEntries = "Entries"
	PathEntryKey        = "Key"
	PathEntryValue      = "Value"
)

// DefaultPanelWidth is the width of the panel in canvas units.
const DefaultPanelWidth = 1000

// NewDebuggerPanel builds the debugger panel layout under parent and returns
// its root. Templates are created inactive.
func NewDebuggerPanel(t *Tree, parent *Widget) *Widget {
	panel := t.New(parent, "CCKDebugger", KindPanel)
	panel.Width = DefaultPanelWidth

	header := t.New(panel, "Header", KindPanel)
	t.New(header, "Title", KindText)
	t.New(header, "Previous", KindButton).Text = "<"
	t.New(header, "Next", KindButton).Text = ">"

	toggles := t.New(panel, "TogglesView", KindPanel)
	for _, name := range []string{"Pin", "Pointer", "Trigger", "Reset"} {
		toggle := t.New(toggles, name, KindToggle)
		toggle.Text = name
		t.New(toggle, "Checkmark", KindImage)
	}

	controls := t.New(panel, "Controls", KindPanel)
	t.New(controls, "Extra", KindText)
	t.New(controls, "Previous", KindButton).Text = "<"
	t.New(controls, "Next", KindButton).Text = ">"

	scroll := t.New(panel, "Scroll View", KindPanel)
	viewport := t.New(scroll, "Viewport", KindPanel)
	t.New(viewport, "Content", KindPanel)

	templates := t.New(panel, "Templates", KindPanel)
	templates.Active = false

	category := t.New(templates, "Template_Category", KindPanel)
	category.Active = false
	t.New(category, "Header", KindText)
	t.New(category, "Entries", KindPanel)

	entry := t.New(templates, "Template_CategoryEntry", KindPanel)
	entry.Active = false
	t.New(entry, "Key", KindText)
	t.New(entry, "Value", KindText)

	return panel
}

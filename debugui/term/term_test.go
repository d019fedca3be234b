package term_test

import (
	"log/slog"
	"testing"

	"github.com/plus3/cckdebug/debugui/term"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tree := ui.NewTree()
	panel := ui.NewDebuggerPanel(tree, tree.Root())
	commands := overlay.NewCommands(tree)
	opts := overlay.DefaultOptions()
	opts.Logger = slog.New(slog.DiscardHandler)

	m, err := overlay.NewMenu(tree, panel, commands, opts)
	require.NoError(t, err)

	m.AddNewDebugger("Avatars")
	attributes := m.AddCategory("Attributes")
	m.SetText(m.AddCategoryEntry(attributes, "User Name"), overlay.String("Nyx"))
	m.SetText(m.AddCategoryEntry(attributes, "Local"), overlay.Bool(true))
	m.AddCategory("Parameters")
	hidden := m.AddCategory("Hidden")
	hidden.SetActive(false)
	m.SetControlsExtra("1/3")

	out := term.Render(m)

	assert.Contains(t, out, "< Avatars >")
	assert.Contains(t, out, "Pin")
	assert.NotContains(t, out, "Pointer", "hidden toggles are skipped")
	assert.Contains(t, out, "< 1/3 >")
	assert.Contains(t, out, "User Name")
	assert.Contains(t, out, "Nyx")
	assert.Contains(t, out, "True")
	assert.Contains(t, out, "(empty)")
	assert.NotContains(t, out, "Hidden")

	m.ShowControls(false)
	assert.NotContains(t, term.Render(m), "1/3")
}

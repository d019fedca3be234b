package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

var toggleOrder = []overlay.ToggleKind{
	overlay.PinToggle,
	overlay.PointerToggle,
	overlay.TriggerToggle,
	overlay.ResetToggle,
}

// Panel draws a menu's widget tree as an ImGui window.
type Panel struct {
	Menu *overlay.Menu
	// Pos and Size place the window the first time it is shown.
	Pos  imgui.Vec2
	Size imgui.Vec2
}

// NewPanel creates a renderer for m.
func NewPanel(m *overlay.Menu) *Panel {
	return &Panel{
		Menu: m,
		Pos:  imgui.NewVec2(10, 10),
		Size: imgui.NewVec2(420, 520),
	}
}

func (p *Panel) Render() {
	m := p.Menu
	if !m.Panel().ActiveInHierarchy() {
		return
	}

	imgui.SetNextWindowPosV(p.Pos, imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(p.Size, imgui.CondOnce)

	if !imgui.BeginV("CCK Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.renderHeader()
	p.renderToggles()
	imgui.Separator()

	if c := m.Controls(); c.Active {
		p.renderControls()
		imgui.Separator()
	}

	for _, category := range m.Content().Children() {
		if category.Active {
			renderCategory(category)
		}
	}

	if current := p.currentVisualizers(); len(current) > 0 {
		imgui.Separator()
		if imgui.TreeNodeStr("Visualizers") {
			for _, v := range current {
				enabled := v.Enabled()
				if imgui.Checkbox(fmt.Sprintf("%s %s##%p", v.Kind, v.Target, v), &enabled) {
					m.SetVisualizerEnabled(v, enabled)
				}
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (p *Panel) renderHeader() {
	m := p.Menu
	button(m.Panel().Find(ui.PathMainPrevious), "##main")
	imgui.SameLine()
	imgui.Text(m.Title().Text)
	imgui.SameLine()
	button(m.Panel().Find(ui.PathMainNext), "##main")
}

func (p *Panel) renderToggles() {
	m := p.Menu
	first := true
	for _, kind := range toggleOrder {
		toggle := m.Toggle(kind)
		if !toggle.Visible() {
			continue
		}
		if !first {
			imgui.SameLine()
		}
		first = false

		on := toggle.IsOn()
		imgui.PushStyleColorVec4(imgui.ColCheckMark, vec4(toggle.Color()))
		if imgui.Checkbox(toggle.Widget().Text, &on) {
			m.Flip(kind, on)
		}
		imgui.PopStyleColor()
	}
}

func (p *Panel) renderControls() {
	m := p.Menu
	button(m.Panel().Find(ui.PathControlPrevious), "##controls")
	imgui.SameLine()
	imgui.Text(m.ControlsExtra().Text)
	imgui.SameLine()
	button(m.Panel().Find(ui.PathControlNext), "##controls")
}

func (p *Panel) currentVisualizers() []*overlay.Visualizer {
	m := p.Menu
	pointers := m.CurrentVisualizers(overlay.PointerVisualizer)
	triggers := m.CurrentVisualizers(overlay.TriggerVisualizer)
	return append(pointers[:len(pointers):len(pointers)], triggers...)
}

func renderCategory(category *ui.Widget) {
	title := category.Find(ui.PathCategoryHeader).Text
	if !imgui.TreeNodeStr(fmt.Sprintf("%s##%d", title, category.ID)) {
		return
	}
	defer imgui.TreePop()

	entries := category.Find(ui.PathCategoryEntries).Children()
	if len(entries) == 0 {
		imgui.Text("(empty)")
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(fmt.Sprintf("entries##%d", category.ID), 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Key")
		imgui.TableSetupColumn("Value")

		for _, entry := range entries {
			if !entry.Active {
				continue
			}
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(entry.Find(ui.PathEntryKey).Text)
			imgui.TableNextColumn()
			value := entry.Find(ui.PathEntryValue)
			imgui.TextColored(vec4(value.Color), value.Text)
		}

		imgui.EndTable()
	}
}

// button draws w as an ImGui button and runs its click handler.
func button(w *ui.Widget, id string) {
	if w == nil || !w.Active {
		return
	}
	if imgui.Button(w.Text+id) && w.OnClick != nil {
		w.OnClick()
	}
}

func vec4(c ui.Color) imgui.Vec4 {
	return imgui.NewVec4(c.R, c.G, c.B, c.A)
}

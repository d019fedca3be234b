package overlay_test

import (
	"fmt"
	"log/slog"

	"github.com/plus3/cckdebug/overlay"
	"github.com/plus3/cckdebug/ui"
)

func ExampleFieldCache() {
	cache := overlay.NewFieldCache(0, slog.Default())
	distance := ui.WidgetID(1)

	fmt.Println(cache.ShouldRedraw(distance, overlay.Float(3.5)))
	fmt.Println(cache.ShouldRedraw(distance, overlay.Float(3.5000001)))
	fmt.Println(cache.ShouldRedraw(distance, overlay.Float(4)))

	// Output:
	// true
	// false
	// true
}

// counterHandler shows how many frames it has been active for.
type counterHandler struct {
	menu   *overlay.Menu
	frames *ui.Widget
	count  int
}

func (h *counterHandler) Name() string { return "Counter" }

func (h *counterHandler) Load(m *overlay.Menu) {
	h.menu = m
	m.AddNewDebugger("Counter")
	category := m.AddCategory("Stats")
	h.frames = m.AddCategoryEntry(category, "Frames")
}

func (h *counterHandler) Unload() {}

func (h *counterHandler) Update(frame *overlay.Frame) {
	h.count++
	h.menu.SetText(h.frames, overlay.Int(h.count/2))
}

func (h *counterHandler) NextSubPage()     {}
func (h *counterHandler) PreviousSubPage() {}

func ExampleMenu() {
	tree := ui.NewTree()
	panel := ui.NewDebuggerPanel(tree, tree.Root())
	commands := overlay.NewCommands(tree)

	menu, err := overlay.NewMenu(tree, panel, commands, overlay.DefaultOptions())
	if err != nil {
		panic(err)
	}
	handler := &counterHandler{}
	menu.Register(handler)
	menu.Start()

	loop := overlay.NewLoop(commands)
	loop.Register(menu)
	for range 4 {
		loop.Once(1.0 / 60)
	}

	fmt.Println(menu.Title().Text, handler.frames.Text)
	stats := menu.Cache().Stats()
	fmt.Printf("redraws: %d, skips: %d\n", stats.Redraws, stats.Skips)

	// Output:
	// Counter 2
	// redraws: 3, skips: 1
}

func ExampleTimeDifference() {
	fmt.Println(overlay.TimeDifference(12.5, 10))
	fmt.Println(overlay.TimeDifference(30, 10))

	// Output:
	// 2.50
	// 10.00+
}

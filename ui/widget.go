// Package ui provides a small retained widget tree that stands in for the host
// engine's UI toolkit. Widgets are addressed by slash separated name paths,
// cloned from templates and destroyed explicitly.
package ui

import "strings"

// WidgetID uniquely identifies a widget within a Tree. Zero is never assigned.
type WidgetID uint64

// Kind describes what a widget renders as.
type Kind uint8

const (
	KindPanel Kind = iota
	KindText
	KindToggle
	KindButton
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindPanel:
		return "Panel"
	case KindText:
		return "Text"
	case KindToggle:
		return "Toggle"
	case KindButton:
		return "Button"
	case KindImage:
		return "Image"
	}
	return "Unknown"
}

// Color is a linear RGBA colour.
type Color struct {
	R, G, B, A float32
}

var (
	White  = Color{1, 1, 1, 1}
	Gray   = Color{0.5, 0.5, 0.5, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0.69, 1, 1}
	Yellow = Color{1, 0.83, 0, 1}
	Orange = Color{1, 0.5, 0, 1}
)

// Transform is a simplified local transform. Rotation is a quaternion (x, y, z, w).
type Transform struct {
	Position [3]float32
	Rotation [4]float32
	Scale    float32
}

// Identity returns a transform at the origin with unit scale.
func Identity() Transform {
	return Transform{Rotation: [4]float32{0, 0, 0, 1}, Scale: 1}
}

// Widget is a node of the tree.
type Widget struct {
	ID     WidgetID
	Name   string
	Kind   Kind
	Text   string
	Color  Color
	Active bool

	Local    Transform
	Anchored [2]float32
	Width    float32

	// OnClick is invoked by presenters for buttons.
	OnClick func()

	parent   *Widget
	children []*Widget
	tree     *Tree
}

// Parent returns the parent widget, nil for roots and detached widgets.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// Children returns the direct children in order. The slice must not be modified.
func (w *Widget) Children() []*Widget {
	return w.children
}

// ChildCount returns the number of direct children.
func (w *Widget) ChildCount() int {
	return len(w.children)
}

// Child returns the i-th child.
func (w *Widget) Child(i int) *Widget {
	return w.children[i]
}

// Find resolves a slash separated path of child names relative to w.
// Returns nil if any segment does not match.
func (w *Widget) Find(path string) *Widget {
	current := w
	for segment := range strings.SplitSeq(path, "/") {
		var next *Widget
		for _, child := range current.children {
			if child.Name == segment {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}

// SetText replaces the widget text.
func (w *Widget) SetText(text string) {
	w.Text = text
}

// SetActive shows or hides the widget.
func (w *Widget) SetActive(active bool) {
	w.Active = active
}

// ActiveInHierarchy reports whether the widget and all its ancestors are active.
func (w *Widget) ActiveInHierarchy() bool {
	for current := w; current != nil; current = current.parent {
		if !current.Active {
			return false
		}
	}
	return true
}

// SetParent moves w under parent, appended as the last child. A nil parent
// detaches the widget. When keepWorld is true the local transform is rewritten
// so the world transform is unchanged.
func (w *Widget) SetParent(parent *Widget, keepWorld bool) {
	world := w.WorldTransform()
	if w.parent != nil {
		w.parent.removeChild(w)
	}
	w.parent = parent
	if parent != nil {
		parent.children = append(parent.children, w)
	}
	if !keepWorld {
		return
	}
	if parent == nil {
		w.Local = world
		return
	}
	pw := parent.WorldTransform()
	scale := pw.Scale
	if scale == 0 {
		scale = 1
	}
	w.Local = Transform{
		Position: [3]float32{
			(world.Position[0] - pw.Position[0]) / scale,
			(world.Position[1] - pw.Position[1]) / scale,
			(world.Position[2] - pw.Position[2]) / scale,
		},
		Rotation: world.Rotation,
		Scale:    world.Scale / scale,
	}
}

// WorldTransform composes position offsets and scales up the parent chain.
// Rotation is taken from the outermost rotated ancestor.
func (w *Widget) WorldTransform() Transform {
	world := w.Local
	for p := w.parent; p != nil; p = p.parent {
		for i := range world.Position {
			world.Position[i] = p.Local.Position[i] + world.Position[i]*p.Local.Scale
		}
		world.Scale *= p.Local.Scale
		if p.Local.Rotation != Identity().Rotation {
			world.Rotation = p.Local.Rotation
		}
	}
	return world
}

// Path returns the slash separated names from the root down to w.
func (w *Widget) Path() string {
	var parts []string
	for current := w; current != nil; current = current.parent {
		parts = append(parts, current.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Destroyed reports whether the widget has been removed from its tree.
func (w *Widget) Destroyed() bool {
	return w.tree == nil
}

func (w *Widget) removeChild(child *Widget) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

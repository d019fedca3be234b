package ui

import (
	"github.com/kamstrup/intmap"
)

// Tree owns every widget it creates and indexes them by ID.
type Tree struct {
	root      *Widget
	nextID    WidgetID
	index     *intmap.Map[WidgetID, *Widget]
	onDestroy []func(*Widget)
}

// NewTree creates a tree with an active root panel named "Root".
func NewTree() *Tree {
	t := &Tree{
		index: intmap.New[WidgetID, *Widget](256),
	}
	t.root = t.New(nil, "Root", KindPanel)
	return t
}

// Root returns the root widget.
func (t *Tree) Root() *Widget {
	return t.root
}

// New creates an active widget under parent. A nil parent creates a detached widget.
func (t *Tree) New(parent *Widget, name string, kind Kind) *Widget {
	t.nextID++
	w := &Widget{
		ID:     t.nextID,
		Name:   name,
		Kind:   kind,
		Color:  White,
		Active: true,
		Local:  Identity(),
		tree:   t,
	}
	t.index.Put(w.ID, w)
	if parent != nil {
		w.parent = parent
		parent.children = append(parent.children, w)
	}
	return w
}

// Get returns the live widget with the given ID, or nil.
func (t *Tree) Get(id WidgetID) *Widget {
	w, ok := t.index.Get(id)
	if !ok {
		return nil
	}
	return w
}

// Len returns the number of live widgets, including the root.
func (t *Tree) Len() int {
	return t.index.Len()
}

// Instantiate deep-copies template under parent. Clones receive fresh IDs and
// keep name, kind, text, colour, active state, transform and click handler.
func (t *Tree) Instantiate(template, parent *Widget) *Widget {
	clone := t.New(parent, template.Name, template.Kind)
	clone.Text = template.Text
	clone.Color = template.Color
	clone.Active = template.Active
	clone.Local = template.Local
	clone.Anchored = template.Anchored
	clone.Width = template.Width
	clone.OnClick = template.OnClick
	for _, child := range template.children {
		t.Instantiate(child, clone)
	}
	return clone
}

// OnDestroy registers fn to be called for every widget removed by Destroy,
// children before their parents.
func (t *Tree) OnDestroy(fn func(*Widget)) {
	t.onDestroy = append(t.onDestroy, fn)
}

// Destroy removes w and all its descendants from the tree. Destroying the
// root or an already destroyed widget is a no-op.
func (t *Tree) Destroy(w *Widget) {
	if w == nil || w == t.root || w.tree != t {
		return
	}
	if w.parent != nil {
		w.parent.removeChild(w)
		w.parent = nil
	}
	t.destroy(w)
}

func (t *Tree) destroy(w *Widget) {
	for _, child := range w.children {
		child.parent = nil
		t.destroy(child)
	}
	w.children = nil
	for _, fn := range t.onDestroy {
		fn(w)
	}
	t.index.Del(w.ID)
	w.tree = nil
}

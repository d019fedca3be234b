package overlay

// VisualizerKind distinguishes pointer and trigger visualizers.
type VisualizerKind uint8

const (
	PointerVisualizer VisualizerKind = iota
	TriggerVisualizer
)

func (k VisualizerKind) String() string {
	if k == TriggerVisualizer {
		return "trigger"
	}
	return "pointer"
}

// Visualizer is a toggleable world-space annotation on one sub-object of an
// inspected entity.
type Visualizer struct {
	Kind    VisualizerKind
	Owner   string
	Target  string
	enabled bool
}

// Enabled reports whether the visualizer is drawn.
func (v *Visualizer) Enabled() bool {
	return v.enabled
}

type visualizerKey struct {
	kind   VisualizerKind
	owner  string
	target string
}

// Visualizers tracks every visualizer created for any entity this session.
type Visualizers struct {
	byKey map[visualizerKey]*Visualizer
	order []*Visualizer
}

// NewVisualizers creates an empty registry.
func NewVisualizers() *Visualizers {
	return &Visualizers{byKey: make(map[visualizerKey]*Visualizer)}
}

// Ensure returns the visualizer for (kind, owner, target), creating a
// disabled one on first use.
func (r *Visualizers) Ensure(kind VisualizerKind, owner, target string) *Visualizer {
	key := visualizerKey{kind: kind, owner: owner, target: target}
	if v, ok := r.byKey[key]; ok {
		return v
	}
	v := &Visualizer{Kind: kind, Owner: owner, Target: target}
	r.byKey[key] = v
	r.order = append(r.order, v)
	return v
}

// HasActive reports whether any visualizer of kind is enabled.
func (r *Visualizers) HasActive(kind VisualizerKind) bool {
	for _, v := range r.order {
		if v.Kind == kind && v.enabled {
			return true
		}
	}
	return false
}

// DisableAll disables every visualizer of kind.
func (r *Visualizers) DisableAll(kind VisualizerKind) {
	for _, v := range r.order {
		if v.Kind == kind {
			v.enabled = false
		}
	}
}

// CountEnabled returns how many visualizers of kind are enabled.
func (r *Visualizers) CountEnabled(kind VisualizerKind) int {
	n := 0
	for _, v := range r.order {
		if v.Kind == kind && v.enabled {
			n++
		}
	}
	return n
}

// Len returns how many visualizers of kind exist.
func (r *Visualizers) Len(kind VisualizerKind) int {
	n := 0
	for _, v := range r.order {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Forget removes every visualizer owned by owner, e.g. when the entity leaves.
func (r *Visualizers) Forget(owner string) {
	kept := r.order[:0]
	for _, v := range r.order {
		if v.Owner == owner {
			delete(r.byKey, visualizerKey{kind: v.Kind, owner: v.Owner, target: v.Target})
			continue
		}
		kept = append(kept, v)
	}
	clear(r.order[len(kept):])
	r.order = kept
}

// All returns every visualizer in creation order.
func (r *Visualizers) All() []*Visualizer {
	return r.order
}

func anyDisabled(list []*Visualizer) bool {
	for _, v := range list {
		if !v.enabled {
			return true
		}
	}
	return false
}

func allEnabled(list []*Visualizer) bool {
	return !anyDisabled(list)
}

package overlay

// Handler is one top-level inspector page.
type Handler interface {
	// Name is shown in diagnostics.
	Name() string
	// Load is called when the handler becomes active.
	Load(m *Menu)
	// Unload is called when another handler is about to become active.
	Unload()
	// Update runs once per frame while the handler is active.
	Update(frame *Frame)
	NextSubPage()
	PreviousSubPage()
}

// Pager cycles through a fixed, ordered list of handlers.
type Pager struct {
	handlers []Handler
	index    int
}

// NewPager creates a pager whose first handler is active.
func NewPager(handlers ...Handler) *Pager {
	return &Pager{handlers: handlers}
}

// Add appends a handler. The active handler is unchanged.
func (p *Pager) Add(h Handler) {
	p.handlers = append(p.handlers, h)
}

// Len returns the number of registered handlers.
func (p *Pager) Len() int {
	return len(p.handlers)
}

// Index returns the position of the active handler.
func (p *Pager) Index() int {
	return p.index
}

// Active returns the active handler, nil when none are registered.
func (p *Pager) Active() Handler {
	if len(p.handlers) == 0 {
		return nil
	}
	return p.handlers[p.index]
}

// Handlers returns the registered handlers in order.
func (p *Pager) Handlers() []Handler {
	return p.handlers
}

// Step moves to the next (or previous) handler with wrap-around and returns
// the handlers on both sides of the move. With fewer than two handlers it does
// nothing and ok is false.
func (p *Pager) Step(next bool) (from, to Handler, ok bool) {
	if len(p.handlers) <= 1 {
		return p.Active(), p.Active(), false
	}
	from = p.handlers[p.index]
	p.index = p.wrap(next)
	return from, p.handlers[p.index], true
}

func (p *Pager) wrap(next bool) int {
	n := len(p.handlers)
	delta := -1
	if next {
		delta = 1
	}
	return (p.index + delta + n) % n
}

package overlay

import "github.com/plus3/cckdebug/ui"

// Signal is a synchronous, in-process event with payload T.
// Subscribers are invoked in subscription order on the emitting goroutine.
type Signal[T any] struct {
	subs   []subscription[T]
	nextID int
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every subscriber with v. Subscriptions added or removed by a
// subscriber take effect from the next Emit.
func (s *Signal[T]) Emit(v T) {
	for _, sub := range s.subs {
		sub.fn(v)
	}
}

// Len returns the number of subscribers.
func (s *Signal[T]) Len() int {
	return len(s.subs)
}

// Bus groups every signal raised by the debugger menu and its handlers.
type Bus struct {
	Pinned         Signal[bool]
	PointerToggled Signal[bool]
	TriggerToggled Signal[bool]
	ResetToggled   Signal[bool]

	MainNextPage     Signal[struct{}]
	MainPreviousPage Signal[struct{}]

	ControlsNextPage     Signal[struct{}]
	ControlsPreviousPage Signal[struct{}]

	// SwitchedInspectedEntity is raised with false when the inspected entity
	// starts changing and with true once the new entity is populated.
	SwitchedInspectedEntity Signal[bool]

	// TextDestroyed is raised for every text widget the tree destroys.
	TextDestroyed Signal[ui.WidgetID]

	// QuickMenuShown mirrors the host shell's quick menu visibility.
	QuickMenuShown Signal[bool]
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

package main

import (
	"math/rand/v2"

	"github.com/plus3/cckdebug/overlay"
)

// User clicks through the menu at random: pages, sub-pages and toggles.
type User struct {
	Menu *overlay.Menu
	Rand *rand.Rand

	PageSwitches    int
	SubPageSwitches int
	ToggleFlips     int
}

var flippable = []overlay.ToggleKind{overlay.PointerToggle, overlay.TriggerToggle, overlay.ResetToggle}

func (u *User) Execute(frame *overlay.Frame) {
	bus := u.Menu.Bus()
	switch n := u.Rand.IntN(100); {
	case n < 2:
		if n == 0 {
			bus.MainNextPage.Emit(struct{}{})
		} else {
			bus.MainPreviousPage.Emit(struct{}{})
		}
		u.PageSwitches++
	case n < 6:
		bus.ControlsNextPage.Emit(struct{}{})
		u.SubPageSwitches++
	case n < 10:
		kind := flippable[u.Rand.IntN(len(flippable))]
		if toggle := u.Menu.Toggle(kind); toggle.Visible() {
			u.Menu.Flip(kind, !toggle.IsOn())
			u.ToggleFlips++
		}
	case n == 10:
		u.Menu.Flip(overlay.PinToggle, !u.Menu.Toggle(overlay.PinToggle).IsOn())
	}
}

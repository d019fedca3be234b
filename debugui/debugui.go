// Package debugui draws the debugger panel with Dear ImGui.
// Render functions are deferred to the end of the frame, after every system
// has updated the panel.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cckdebug/overlay"
)

// Renderer draws one ImGui window per frame.
type Renderer interface {
	Render()
}

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers the render function of every item and records the input
// capture state.
type System struct {
	Items      []Renderer
	InputState InputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (s *System) Execute(frame *overlay.Frame) {
	io := imgui.CurrentIO()
	s.InputState.WantCaptureMouse = io.WantCaptureMouse()
	s.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bitleak/internal/trail"
)

// Sample is the input state of one frame.
type Sample struct {
	Mouse      trail.Point
	MouseMoved bool
	Touches    []trail.Point
	Resized    bool
	Width      float64
	Height     float64
}

// Input turns per-frame samples into trail input. Desktop raylib mirrors the
// left mouse button as a touch point, so mouse motion is only reported as a
// pointer move while no touch is down.
type Input struct {
	handler     trail.InputHandler
	prevTouches []trail.Point
}

func (in *Input) Bind(h trail.InputHandler) { in.handler = h }
func (in *Input) Unbind()                   { in.handler = nil }

func (in *Input) Poll(s Sample) {
	prev := in.prevTouches
	in.prevTouches = s.Touches
	if in.handler == nil {
		return
	}

	if s.Resized {
		in.handler.Resize(s.Width, s.Height)
	}

	switch {
	case len(s.Touches) > 0 && len(prev) == 0:
		in.handler.TouchStart(s.Touches)
	case len(s.Touches) > 0 && touchesMoved(prev, s.Touches):
		in.handler.TouchMove(s.Touches)
	case len(s.Touches) == 0 && s.MouseMoved:
		in.handler.PointerMove(s.Mouse)
	}
}

func touchesMoved(prev, cur []trail.Point) bool {
	if len(prev) != len(cur) {
		return true
	}
	for i := range cur {
		if prev[i] != cur[i] {
			return true
		}
	}
	return false
}

func sample() Sample {
	delta := rl.GetMouseDelta()
	mouse := rl.GetMousePosition()
	s := Sample{
		Mouse:      trail.Point{X: float64(mouse.X), Y: float64(mouse.Y)},
		MouseMoved: delta.X != 0 || delta.Y != 0,
		Resized:    rl.IsWindowResized(),
		Width:      float64(rl.GetScreenWidth()),
		Height:     float64(rl.GetScreenHeight()),
	}
	n := rl.GetTouchPointCount()
	for i := int32(0); i < n; i++ {
		p := rl.GetTouchPosition(i)
		s.Touches = append(s.Touches, trail.Point{X: float64(p.X), Y: float64(p.Y)})
	}
	return s
}

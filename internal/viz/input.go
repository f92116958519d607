package viz

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bitleak/internal/trail"
)

// MouseInput turns Bubble Tea mouse and size messages into trail input.
// Cell coordinates become the pixel at the centre of the cell.
type MouseInput struct {
	handler      trail.InputHandler
	cellW, cellH float64
}

func NewMouseInput(cellW, cellH float64) *MouseInput {
	return &MouseInput{cellW: cellW, cellH: cellH}
}

func (in *MouseInput) Bind(h trail.InputHandler) { in.handler = h }
func (in *MouseInput) Unbind()                   { in.handler = nil }
func (in *MouseInput) Bound() bool               { return in.handler != nil }

// HandleMouse dispatches one mouse message. It reports whether the message
// was delivered to a bound handler.
func (in *MouseInput) HandleMouse(msg tea.MouseMsg) bool {
	if in.handler == nil {
		return false
	}
	p := in.toPixels(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		in.handler.PointerMove(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		in.handler.TouchStart([]trail.Point{p})
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		in.handler.TouchMove([]trail.Point{p})
	default:
		return false
	}
	return true
}

// HandleResize reports a terminal of cols x rows cells as a pixel viewport.
func (in *MouseInput) HandleResize(cols, rows int) bool {
	if in.handler == nil {
		return false
	}
	in.handler.Resize(float64(cols)*in.cellW, float64(rows)*in.cellH)
	return true
}

func (in *MouseInput) toPixels(col, row int) trail.Point {
	return trail.Point{
		X: (float64(col) + 0.5) * in.cellW,
		Y: (float64(row) + 0.5) * in.cellH,
	}
}

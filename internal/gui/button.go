package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const buttonPad = 12

// Button is the on-screen toggle in the top-left corner. It implements
// trail.Control.
type Button struct {
	Label string
	Rect  rl.Rectangle
	fn    func()
}

func (b *Button) SetLabel(label string) { b.Label = label }
func (b *Button) OnActivate(fn func())  { b.fn = fn }

func (b *Button) Activate() {
	if b.fn != nil {
		b.fn()
	}
}

// Layout sizes the button around its current label.
func (b *Button) Layout(font rl.Font, fontSize float64) {
	m := rl.MeasureTextEx(font, b.Label, float32(fontSize*0.75), 1)
	b.Rect = rl.NewRectangle(16, 16, m.X+2*buttonPad, m.Y+buttonPad)
}

func (b *Button) Draw(font rl.Font, fontSize float64) {
	bg := ColButton
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Rect) {
		bg = ColHover
	}
	rl.DrawRectangleRec(b.Rect, bg)
	rl.DrawRectangleLinesEx(b.Rect, 1, ColTextDim)
	pos := rl.NewVector2(b.Rect.X+buttonPad, b.Rect.Y+buttonPad/2)
	rl.DrawTextEx(font, b.Label, pos, float32(fontSize*0.75), 1, ColText)
}

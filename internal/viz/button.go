package viz

import "github.com/charmbracelet/lipgloss"

// Button is the status bar toggle. It implements trail.Control.
type Button struct {
	label    string
	fn       func()
	col, row int
}

func NewButton() *Button {
	return &Button{}
}

func (b *Button) SetLabel(label string) { b.label = label }
func (b *Button) OnActivate(fn func())  { b.fn = fn }
func (b *Button) Label() string         { return b.label }

// Activate fires the subscribed callback, if any.
func (b *Button) Activate() {
	if b.fn != nil {
		b.fn()
	}
}

// Place sets the cell where the button's left edge is drawn.
func (b *Button) Place(col, row int) {
	b.col, b.row = col, row
}

func (b *Button) Width() int {
	return lipgloss.Width(b.text())
}

// Contains reports whether the cell (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return y == b.row && x >= b.col && x < b.col+b.Width()
}

func (b *Button) Render(style lipgloss.Style) string {
	return style.Render(b.text())
}

func (b *Button) text() string {
	return "[ " + b.label + " ]"
}

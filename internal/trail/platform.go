package trail

// Point is a 2D location in host pixels.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Transform is the 2D affine state of a glyph: translate, then scale, then
// rotate (degrees).
type Transform struct {
	Translate Point
	Scale     float64
	Rotate    float64
}

// Handle is an on-screen glyph owned by exactly one particle.
type Handle interface {
	SetTransform(tf Transform)
	Attach()
	Detach()
}

// Surface creates detached handles.
type Surface interface {
	NewHandle(glyph string) Handle
}

// InputHandler receives host input while bound.
type InputHandler interface {
	PointerMove(p Point)
	TouchMove(touches []Point)
	TouchStart(touches []Point)
	Resize(width, height float64)
}

// InputSource delivers host input to at most one bound handler.
type InputSource interface {
	Bind(h InputHandler)
	Unbind()
}

// Control is the single toggle affordance: a settable label and an
// activation event.
type Control interface {
	SetLabel(label string)
	OnActivate(fn func())
}

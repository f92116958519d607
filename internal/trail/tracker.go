package trail

// Spawner accepts spawn requests.
type Spawner interface {
	Spawn(x, y float64, glyph string)
}

// InputTracker maps input events to spawn requests. It keeps the last cursor
// position and the viewport size; it never touches visuals.
type InputTracker struct {
	glyphs []string
	rnd    Source
	target Spawner

	cursor        Point
	width, height float64
}

// NewInputTracker places the cursor at the centre of the initial viewport.
func NewInputTracker(glyphs []string, rnd Source, target Spawner, viewport Point) *InputTracker {
	return &InputTracker{
		glyphs: glyphs,
		rnd:    rnd,
		target: target,
		cursor: Point{viewport.X / 2, viewport.Y / 2},
		width:  viewport.X,
		height: viewport.Y,
	}
}

func (t *InputTracker) PointerMove(p Point) {
	t.cursor = p
	t.spawn(p)
}

func (t *InputTracker) TouchMove(touches []Point) {
	for _, p := range touches {
		t.spawn(p)
	}
}

// TouchStart spawns exactly like TouchMove.
func (t *InputTracker) TouchStart(touches []Point) {
	t.TouchMove(touches)
}

func (t *InputTracker) Resize(width, height float64) {
	t.width, t.height = width, height
}

// spawn requests nothing when there is no glyph to draw.
func (t *InputTracker) spawn(p Point) {
	if g := PickGlyph(t.rnd, t.glyphs); g != "" {
		t.target.Spawn(p.X, p.Y, g)
	}
}

func (t *InputTracker) Cursor() Point { return t.cursor }

func (t *InputTracker) Viewport() Point { return Point{t.width, t.height} }

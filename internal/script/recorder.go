package script

import (
	"slices"

	"github.com/san-kum/bitleak/internal/trail"
)

// Recorder wraps an InputSource and records every event the bound handler
// receives. Input arriving while unbound is never seen, as in the live host.
type Recorder struct {
	inner  trail.InputSource
	clock  func() float64
	start  float64
	events []Event
}

func NewRecorder(inner trail.InputSource, clock func() float64) *Recorder {
	return &Recorder{inner: inner, clock: clock, start: clock()}
}

func (r *Recorder) Bind(h trail.InputHandler) {
	r.inner.Bind(&tap{next: h, rec: r})
}

func (r *Recorder) Unbind() {
	r.inner.Unbind()
}

// Toggle records a user activation of the control.
func (r *Recorder) Toggle() {
	r.add(Event{Kind: KindToggle})
}

func (r *Recorder) Len() int { return len(r.events) }

// Script snapshots the recording.
func (r *Recorder) Script(name string, seed int64, fps int, viewport trail.Point) *Script {
	return &Script{
		Name:     name,
		Seed:     seed,
		FPS:      fps,
		Viewport: viewport,
		Events:   slices.Clone(r.events),
	}
}

func (r *Recorder) add(ev Event) {
	ev.At = r.clock() - r.start
	if n := len(r.events); n > 0 && ev.At < r.events[n-1].At {
		ev.At = r.events[n-1].At
	}
	r.events = append(r.events, ev)
}

type tap struct {
	next trail.InputHandler
	rec  *Recorder
}

func (t *tap) PointerMove(p trail.Point) {
	t.rec.add(Event{Kind: KindPointerMove, X: p.X, Y: p.Y})
	t.next.PointerMove(p)
}

func (t *tap) TouchMove(touches []trail.Point) {
	t.rec.add(Event{Kind: KindTouchMove, Touches: slices.Clone(touches)})
	t.next.TouchMove(touches)
}

func (t *tap) TouchStart(touches []trail.Point) {
	t.rec.add(Event{Kind: KindTouchStart, Touches: slices.Clone(touches)})
	t.next.TouchStart(touches)
}

func (t *tap) Resize(width, height float64) {
	t.rec.add(Event{Kind: KindResize, Width: width, Height: height})
	t.next.Resize(width, height)
}

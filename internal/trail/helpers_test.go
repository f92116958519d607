package trail

// seqSource replays vals in a loop.
type seqSource struct {
	vals []float64
	i    int
}

func constSource(v float64) *seqSource { return &seqSource{vals: []float64{v}} }

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type stubHandle struct {
	glyph    string
	tf       Transform
	sets     int
	attaches int
	detaches int
}

func (h *stubHandle) SetTransform(tf Transform) { h.tf = tf; h.sets++ }
func (h *stubHandle) Attach()                   { h.attaches++ }
func (h *stubHandle) Detach()                   { h.detaches++ }

type stubSurface struct {
	handles []*stubHandle
}

func (s *stubSurface) NewHandle(glyph string) Handle {
	h := &stubHandle{glyph: glyph}
	s.handles = append(s.handles, h)
	return h
}

func (s *stubSurface) detached() int {
	n := 0
	for _, h := range s.handles {
		n += h.detaches
	}
	return n
}

type spawnCall struct {
	x, y  float64
	glyph string
}

type recordingSpawner struct {
	calls []spawnCall
}

func (r *recordingSpawner) Spawn(x, y float64, glyph string) {
	r.calls = append(r.calls, spawnCall{x, y, glyph})
}

type nopInput struct{}

func (nopInput) Bind(InputHandler) {}
func (nopInput) Unbind()           {}

type nopControl struct{}

func (nopControl) SetLabel(string)   {}
func (nopControl) OnActivate(func()) {}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

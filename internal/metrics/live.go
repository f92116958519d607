package metrics

// MeanLive is the average live count over all frames.
type MeanLive struct {
	name    string
	samples int
	total   float64
}

func NewMeanLive() *MeanLive {
	return &MeanLive{name: "mean_live"}
}

func (m *MeanLive) Name() string { return m.name }

func (m *MeanLive) Observe(now float64, live int) {
	m.samples++
	m.total += float64(live)
}

func (m *MeanLive) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanLive) Reset() {
	m.samples = 0
	m.total = 0
}

// Burst is the largest frame-to-frame rise in the live count, a rough
// measure of how much input arrived between two refreshes.
type Burst struct {
	name string
	prev int
	max  int
}

func NewBurst() *Burst {
	return &Burst{name: "burst"}
}

func (b *Burst) Name() string { return b.name }

func (b *Burst) Observe(now float64, live int) {
	if d := live - b.prev; d > b.max {
		b.max = d
	}
	b.prev = live
}

func (b *Burst) Value() float64 { return float64(b.max) }

func (b *Burst) Reset() {
	b.prev = 0
	b.max = 0
}

package metrics

// Occupancy is the fraction of frames with at least one live glyph.
type Occupancy struct {
	name     string
	occupied int
	samples  int
}

func NewOccupancy() *Occupancy {
	return &Occupancy{name: "occupancy"}
}

func (o *Occupancy) Name() string {
	return o.name
}

func (o *Occupancy) Observe(now float64, live int) {
	o.samples++
	if live > 0 {
		o.occupied++
	}
}

func (o *Occupancy) Value() float64 {
	if o.samples == 0 {
		return 0
	}
	return float64(o.occupied) / float64(o.samples)
}

func (o *Occupancy) Reset() {
	o.occupied = 0
	o.samples = 0
}

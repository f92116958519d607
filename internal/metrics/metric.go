// Package metrics summarises a replay frame by frame.
package metrics

// Metric observes the live particle count once per frame.
type Metric interface {
	Name() string
	Observe(now float64, live int)
	Value() float64
	Reset()
}

// Default returns a fresh set of the standard replay metrics.
func Default() []Metric {
	return []Metric{NewMeanLive(), NewOccupancy(), NewBurst()}
}

package trail

import (
	"errors"
	"fmt"
)

// Fixed transform divisors. Scale reaches 1 at a 3000ms life and rotation
// turns one degree per 8ms of remaining life.
const (
	ScaleDivisor    = 3000.0
	RotationDivisor = 8.0
)

// Tuning holds the named effect options. Nothing else about the effect is
// configurable.
type Tuning struct {
	Glyphs           []string
	MinLifespan      float64 // ms
	LifespanJitter   float64 // ms, added as floor(random*jitter)
	CenteringOffset  float64 // subtracted from both spawn axes
	HorizontalJitter float64 // per-frame |dvx|
	VerticalDrift    float64 // per-frame max upward dvy
}

func DefaultTuning() Tuning {
	return Tuning{
		Glyphs:           []string{"0", "1"},
		MinLifespan:      2000,
		LifespanJitter:   1000,
		CenteringOffset:  20,
		HorizontalJitter: 2.0 / 75.0,
		VerticalDrift:    1.0 / 400.0,
	}
}

func (t Tuning) Validate() error {
	if len(t.Glyphs) == 0 {
		return errors.New("tuning: glyph set is empty")
	}
	for i, g := range t.Glyphs {
		if g == "" {
			return fmt.Errorf("tuning: glyph %d is empty", i)
		}
	}
	if t.MinLifespan <= 0 {
		return fmt.Errorf("tuning: min lifespan must be positive, got %v", t.MinLifespan)
	}
	if t.LifespanJitter < 0 {
		return fmt.Errorf("tuning: lifespan jitter must not be negative, got %v", t.LifespanJitter)
	}
	if t.HorizontalJitter < 0 || t.VerticalDrift < 0 {
		return errors.New("tuning: jitter and drift magnitudes must not be negative")
	}
	return nil
}

// MaxLifespan is the longest life a particle can be born with.
func (t Tuning) MaxLifespan() float64 {
	return t.MinLifespan + t.LifespanJitter
}

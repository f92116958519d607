package trail

import "math"

// Particle is one transient glyph. Velocity is a per-frame delta and is not
// scaled by elapsed time.
type Particle struct {
	Origin   Point
	Position Point
	Velocity Point
	Life     float64
	Glyph    string

	tuning   *Tuning
	rnd      Source
	handle   Handle
	detached bool
}

func newParticle(x, y float64, glyph string, tuning *Tuning, rnd Source, surface Surface) *Particle {
	origin := Point{x - tuning.CenteringOffset, y - tuning.CenteringOffset}
	p := &Particle{
		Origin:   origin,
		Position: origin,
		Glyph:    glyph,
		tuning:   tuning,
		rnd:      rnd,
	}
	sign := RandomSign(rnd)
	p.Velocity = Point{
		X: sign * (rnd.Float64() / 2),
		Y: 1 + rnd.Float64(),
	}
	p.Life = tuning.MinLifespan + math.Floor(rnd.Float64()*tuning.LifespanJitter)

	p.handle = surface.NewHandle(glyph)
	p.update(0)
	p.handle.Attach()
	return p
}

func (p *Particle) update(dt float64) {
	p.Position = p.Position.Add(p.Velocity)

	p.Velocity.X += RandomSign(p.rnd) * p.tuning.HorizontalJitter
	p.Velocity.Y -= p.rnd.Float64() * p.tuning.VerticalDrift

	p.Life -= dt

	p.handle.SetTransform(p.Transform())
}

// Transform derives the visual state. Scale goes negative once life does;
// such particles are reaped in the same frame.
func (p *Particle) Transform() Transform {
	return Transform{
		Translate: p.Position,
		Scale:     p.Life / ScaleDivisor,
		Rotate:    p.Life / RotationDivisor,
	}
}

func (p *Particle) Expired() bool { return p.Life < 0 }

// Detached reports whether the handle has been removed from its surface.
func (p *Particle) Detached() bool { return p.detached }

func (p *Particle) die() {
	if p.detached {
		return
	}
	p.detached = true
	p.handle.Detach()
}

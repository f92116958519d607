package trail

import "slices"

// ParticleSet is the ordered collection of live particles.
type ParticleSet struct {
	tuning    Tuning
	rnd       Source
	surface   Surface
	particles []*Particle
}

func NewParticleSet(tuning Tuning, rnd Source, surface Surface) *ParticleSet {
	return &ParticleSet{
		tuning:    tuning,
		rnd:       rnd,
		surface:   surface,
		particles: make([]*Particle, 0, 64),
	}
}

// Add spawns a particle centred on (x, y) and returns it.
func (s *ParticleSet) Add(x, y float64, glyph string) *Particle {
	p := newParticle(x, y, glyph, &s.tuning, s.rnd, s.surface)
	s.particles = append(s.particles, p)
	return p
}

// UpdateAll advances every particle by dt milliseconds in insertion order.
func (s *ParticleSet) UpdateAll(dt float64) {
	for _, p := range s.particles {
		p.update(dt)
	}
}

// ReapExpired removes particles whose life fell below zero and returns how
// many were removed. The scan runs backward so removals don't shift
// unvisited indices.
func (s *ParticleSet) ReapExpired() int {
	reaped := 0
	for i := len(s.particles) - 1; i >= 0; i-- {
		p := s.particles[i]
		if !p.Expired() {
			continue
		}
		p.die()
		s.particles = slices.Delete(s.particles, i, i+1)
		reaped++
	}
	return reaped
}

// Clear detaches every particle regardless of life and empties the set.
func (s *ParticleSet) Clear() int {
	n := len(s.particles)
	for i := n - 1; i >= 0; i-- {
		s.particles[i].die()
	}
	clear(s.particles)
	s.particles = s.particles[:0]
	return n
}

func (s *ParticleSet) Len() int { return len(s.particles) }

// Each visits live particles in insertion order. fn must not mutate the set.
func (s *ParticleSet) Each(fn func(p *Particle)) {
	for _, p := range s.particles {
		fn(p)
	}
}

func (s *ParticleSet) Tuning() Tuning { return s.tuning }

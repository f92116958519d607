package trail

import (
	"math/rand"
	"testing"
)

func TestAddCentersOnInputPoint(t *testing.T) {
	surface := &stubSurface{}
	set := NewParticleSet(DefaultTuning(), constSource(0.25), surface)

	p := set.Add(100, 100, "0")

	if p.Origin != (Point{80, 80}) {
		t.Errorf("expected origin (80,80), got %v", p.Origin)
	}
	// sign=-1, |vx|=0.125, vy=1.25, one zero-dt update at creation
	if p.Position != (Point{79.875, 81.25}) {
		t.Errorf("expected position (79.875,81.25), got %v", p.Position)
	}
	if p.Life != 2250 {
		t.Errorf("expected life 2250, got %v", p.Life)
	}
	if p.Glyph != "0" || surface.handles[0].glyph != "0" {
		t.Errorf("expected glyph 0 on particle and handle")
	}
}

func TestCreationAppliesJitterOnce(t *testing.T) {
	tuning := DefaultTuning()
	set := NewParticleSet(tuning, constSource(0.25), &stubSurface{})

	p := set.Add(0, 0, "1")

	wantVX := -0.125 - tuning.HorizontalJitter
	wantVY := 1.25 - 0.25*tuning.VerticalDrift
	if !near(p.Velocity.X, wantVX) {
		t.Errorf("expected vx %.6f, got %.6f", wantVX, p.Velocity.X)
	}
	if !near(p.Velocity.Y, wantVY) {
		t.Errorf("expected vy %.6f, got %.6f", wantVY, p.Velocity.Y)
	}
	if p.Life != 2250 {
		t.Errorf("zero elapsed must not change life, got %v", p.Life)
	}
}

func TestCreationSetsTransformBeforeAttach(t *testing.T) {
	surface := &stubSurface{}
	set := NewParticleSet(DefaultTuning(), constSource(0.9), surface)
	p := set.Add(50, 60, "1")

	h := surface.handles[0]
	if h.sets != 1 || h.attaches != 1 {
		t.Fatalf("expected one transform and one attach, got %d and %d", h.sets, h.attaches)
	}
	if h.tf != p.Transform() {
		t.Errorf("expected handle transform %v, got %v", p.Transform(), h.tf)
	}
}

func TestExpiredParticleIsReaped(t *testing.T) {
	surface := &stubSurface{}
	set := NewParticleSet(DefaultTuning(), constSource(0.5), surface)
	p := set.Add(10, 10, "0")
	p.Life = 50

	set.UpdateAll(60)
	if p.Life != -10 {
		t.Fatalf("expected life -10, got %v", p.Life)
	}

	if n := set.ReapExpired(); n != 1 {
		t.Errorf("expected 1 reaped, got %d", n)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d", set.Len())
	}
	set.Clear()
	p.die()
	if d := surface.handles[0].detaches; d != 1 {
		t.Errorf("expected exactly one detach, got %d", d)
	}
	if !p.Detached() {
		t.Error("expected particle to report detached")
	}
}

func TestLifeStrictlyDecreases(t *testing.T) {
	set := NewParticleSet(DefaultTuning(), rand.New(rand.NewSource(7)), &stubSurface{})
	p := set.Add(0, 0, "0")

	prev := p.Life
	for i := 0; i < 100; i++ {
		set.UpdateAll(16.7)
		if p.Life >= prev {
			t.Fatalf("step %d: life did not decrease (%v -> %v)", i, prev, p.Life)
		}
		prev = p.Life
	}
}

func TestTransformFollowsLife(t *testing.T) {
	p := &Particle{Position: Point{3, 4}, Life: 1500}
	tf := p.Transform()
	if tf.Translate != (Point{3, 4}) {
		t.Errorf("expected translate (3,4), got %v", tf.Translate)
	}
	if tf.Scale != 0.5 {
		t.Errorf("expected scale 0.5, got %v", tf.Scale)
	}
	if tf.Rotate != 187.5 {
		t.Errorf("expected rotation 187.5, got %v", tf.Rotate)
	}

	p.Life = -30
	if p.Transform().Scale >= 0 {
		t.Error("expected negative scale for negative life")
	}
}

func TestLifespanRange(t *testing.T) {
	set := NewParticleSet(DefaultTuning(), rand.New(rand.NewSource(1)), &stubSurface{})
	for i := 0; i < 500; i++ {
		p := set.Add(0, 0, "0")
		if p.Life < 2000 || p.Life >= 3000 {
			t.Fatalf("life %v outside [2000,3000)", p.Life)
		}
		if p.Life != float64(int(p.Life)) {
			t.Fatalf("expected whole-ms lifespan, got %v", p.Life)
		}
	}
}

func TestPositionStepIgnoresElapsed(t *testing.T) {
	for _, dt := range []float64{1, 16, 1000} {
		set := NewParticleSet(DefaultTuning(), constSource(0.25), &stubSurface{})
		p := set.Add(100, 100, "0")
		before, vel := p.Position, p.Velocity

		set.UpdateAll(dt)

		want := before.Add(vel)
		if !near(p.Position.X, want.X) || !near(p.Position.Y, want.Y) {
			t.Errorf("dt=%v: expected position %v, got %v", dt, want, p.Position)
		}
	}
}

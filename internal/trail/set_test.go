package trail

import (
	"math/rand"
	"testing"
)

func TestSetSizeProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	surface := &stubSurface{}
	set := NewParticleSet(DefaultTuning(), rnd, surface)

	for round := 0; round < 20; round++ {
		for i := 0; i < 5; i++ {
			before := set.Len()
			set.Add(rnd.Float64()*800, rnd.Float64()*600, "0")
			if set.Len() != before+1 {
				t.Fatalf("expected %d after add, got %d", before+1, set.Len())
			}
		}

		set.UpdateAll(rnd.Float64() * 900)

		expired := 0
		set.Each(func(p *Particle) {
			if p.Life < 0 {
				expired++
			}
		})
		before := set.Len()
		if n := set.ReapExpired(); n != expired {
			t.Fatalf("round %d: expected %d reaped, got %d", round, expired, n)
		}
		if set.Len() != before-expired {
			t.Fatalf("round %d: expected %d live, got %d", round, before-expired, set.Len())
		}
	}

	if leaked := len(surface.handles) - surface.detached() - set.Len(); leaked != 0 {
		t.Errorf("expected no leaked handles, got %d", leaked)
	}
}

func TestReapKeepsSurvivorOrder(t *testing.T) {
	set := NewParticleSet(DefaultTuning(), constSource(0.5), &stubSurface{})
	lives := []float64{-1, 100, -5, 200, 300, -2}
	glyphs := []string{"a", "b", "c", "d", "e", "f"}
	for i, l := range lives {
		p := set.Add(0, 0, glyphs[i])
		p.Life = l
	}

	if n := set.ReapExpired(); n != 3 {
		t.Fatalf("expected 3 reaped, got %d", n)
	}

	var got []string
	set.Each(func(p *Particle) { got = append(got, p.Glyph) })
	want := []string{"b", "d", "e"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestReapLeavesZeroLife(t *testing.T) {
	set := NewParticleSet(DefaultTuning(), constSource(0.5), &stubSurface{})
	p := set.Add(0, 0, "0")
	p.Life = 0

	if n := set.ReapExpired(); n != 0 {
		t.Errorf("life 0 is not expired, got %d reaped", n)
	}
}

func TestClearDetachesEverything(t *testing.T) {
	surface := &stubSurface{}
	set := NewParticleSet(DefaultTuning(), constSource(0.3), surface)
	for i := 0; i < 5; i++ {
		set.Add(float64(i), 0, "1")
	}

	if n := set.Clear(); n != 5 {
		t.Errorf("expected 5 cleared, got %d", n)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set, got %d", set.Len())
	}
	for i, h := range surface.handles {
		if h.detaches != 1 {
			t.Errorf("handle %d: expected 1 detach, got %d", i, h.detaches)
		}
	}
}

func TestEmptySetIsNoop(t *testing.T) {
	set := NewParticleSet(DefaultTuning(), constSource(0.3), &stubSurface{})
	set.UpdateAll(16)
	if n := set.ReapExpired(); n != 0 {
		t.Errorf("expected 0 reaped, got %d", n)
	}
	if n := set.Clear(); n != 0 {
		t.Errorf("expected 0 cleared, got %d", n)
	}
}

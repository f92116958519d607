package viz

import (
	"testing"

	"github.com/san-kum/bitleak/internal/trail"
)

func TestSurfaceAttachDetach(t *testing.T) {
	s := NewSurface()
	a := s.NewHandle("0")
	b := s.NewHandle("1")
	if s.Len() != 0 {
		t.Fatalf("expected new handles detached, got %d attached", s.Len())
	}
	a.Attach()
	a.Attach()
	b.Attach()
	if s.Len() != 2 {
		t.Errorf("expected 2 attached, got %d", s.Len())
	}
	a.Detach()
	a.Detach()
	if s.Len() != 1 {
		t.Errorf("expected 1 attached after detach, got %d", s.Len())
	}
	if s.attached[0] != b {
		t.Error("expected remaining handle to be b")
	}
}

func TestSurfaceDrawUsesCellOfPosition(t *testing.T) {
	s := NewSurface()
	h := s.NewHandle("1")
	h.SetTransform(trail.Transform{Translate: trail.Point{X: 20, Y: 40}, Scale: 0.9})
	h.Attach()
	off := s.NewHandle("0")
	off.SetTransform(trail.Transform{Translate: trail.Point{X: -5, Y: 0}, Scale: 0.9})
	off.Attach()

	c := NewCanvas(5, 4)
	s.Draw(c, 8, 16)
	if got := c.At(2, 2); got != '1' {
		t.Errorf("expected glyph at cell (2,2), got %q", got)
	}
	if c.Grid[2][2].level != levelHot {
		t.Errorf("expected hot level, got %d", c.Grid[2][2].level)
	}
	if c.At(0, 0) != ' ' {
		t.Error("expected off-canvas glyph dropped")
	}
}

func TestSurfaceMultiRuneGlyph(t *testing.T) {
	s := NewSurface()
	h := s.NewHandle("·x")
	h.Attach()
	c := NewCanvas(1, 1)
	s.Draw(c, 8, 16)
	if got := c.At(0, 0); got != '·' {
		t.Errorf("expected first rune of glyph, got %q", got)
	}
}

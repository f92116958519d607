package gui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bitleak/internal/trail"
)

// Surface draws attached glyph handles with their full transform: the
// scale term sets both the font size and the alpha.
type Surface struct {
	attached []*glyphHandle
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) NewHandle(glyph string) trail.Handle {
	return &glyphHandle{surface: s, glyph: glyph}
}

func (s *Surface) Len() int { return len(s.attached) }

func (s *Surface) Draw(font rl.Font, fontSize float64, color rl.Color) {
	for _, h := range s.attached {
		scale := clamp01(h.tf.Scale)
		if scale == 0 {
			continue
		}
		size := float32(fontSize * scale)
		measure := rl.MeasureTextEx(font, h.glyph, size, 1)
		pos := rl.NewVector2(float32(h.tf.Translate.X), float32(h.tf.Translate.Y))
		origin := rl.NewVector2(measure.X/2, measure.Y/2)
		rl.DrawTextPro(font, h.glyph, pos, origin, float32(h.tf.Rotate), size, 1, rl.ColorAlpha(color, float32(scale)))
	}
}

type glyphHandle struct {
	surface  *Surface
	glyph    string
	tf       trail.Transform
	attached bool
}

func (h *glyphHandle) SetTransform(tf trail.Transform) { h.tf = tf }

func (h *glyphHandle) Attach() {
	if h.attached {
		return
	}
	h.attached = true
	h.surface.attached = append(h.surface.attached, h)
}

func (h *glyphHandle) Detach() {
	if !h.attached {
		return
	}
	h.attached = false
	if i := slices.Index(h.surface.attached, h); i >= 0 {
		h.surface.attached = slices.Delete(h.surface.attached, i, i+1)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

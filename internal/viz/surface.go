package viz

import (
	"math"
	"slices"

	"github.com/san-kum/bitleak/internal/trail"
)

// Surface keeps attached glyph handles in attach order and draws them onto
// a Canvas.
type Surface struct {
	attached []*cellHandle
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) NewHandle(glyph string) trail.Handle {
	r := ' '
	if rs := []rune(glyph); len(rs) > 0 {
		r = rs[0]
	}
	return &cellHandle{surface: s, glyph: r}
}

// Len is the number of attached handles.
func (s *Surface) Len() int { return len(s.attached) }

// Draw plots every attached handle at the cell containing its position.
// Later handles overwrite earlier ones in the same cell.
func (s *Surface) Draw(c *Canvas, cellW, cellH float64) {
	for _, h := range s.attached {
		col := int(math.Floor(h.tf.Translate.X / cellW))
		row := int(math.Floor(h.tf.Translate.Y / cellH))
		c.Set(col, row, h.glyph, levelFor(h.tf.Scale))
	}
}

type cellHandle struct {
	surface  *Surface
	glyph    rune
	tf       trail.Transform
	attached bool
}

func (h *cellHandle) SetTransform(tf trail.Transform) { h.tf = tf }

func (h *cellHandle) Attach() {
	if h.attached {
		return
	}
	h.attached = true
	h.surface.attached = append(h.surface.attached, h)
}

func (h *cellHandle) Detach() {
	if !h.attached {
		return
	}
	h.attached = false
	if i := slices.Index(h.surface.attached, h); i >= 0 {
		h.surface.attached = slices.Delete(h.surface.attached, i, i+1)
	}
}

package export

import (
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/san-kum/bitleak/internal/trail"
)

// Surface is a trail.Surface that renders attached glyphs as SVG text,
// carrying the full transform and fading opacity with scale.
type Surface struct {
	Width, Height float64
	FontSize      float64
	Fill          string
	attached      []*svgHandle
}

func NewSurface(viewport trail.Point, fontSize float64, fill string) *Surface {
	return &Surface{Width: viewport.X, Height: viewport.Y, FontSize: fontSize, Fill: fill}
}

func (s *Surface) NewHandle(glyph string) trail.Handle {
	return &svgHandle{surface: s, glyph: glyph}
}

func (s *Surface) Len() int { return len(s.attached) }

// Snapshot renders the attached glyphs in attach order.
func (s *Surface) Snapshot() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s" font-family="monospace" font-size="%.0f" text-anchor="middle" dominant-baseline="central">
`, s.Width, s.Height, s.Width, s.Height, s.Fill, s.FontSize))

	for _, h := range s.attached {
		tf := h.tf
		opacity := min(max(tf.Scale, 0), 1)
		sb.WriteString(fmt.Sprintf(`<text transform="translate(%.1f %.1f) scale(%.3f) rotate(%.1f)" opacity="%.3f">%s</text>
`, tf.Translate.X, tf.Translate.Y, tf.Scale, tf.Rotate, opacity, html.EscapeString(h.glyph)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

type svgHandle struct {
	surface  *Surface
	glyph    string
	tf       trail.Transform
	attached bool
}

func (h *svgHandle) SetTransform(tf trail.Transform) { h.tf = tf }

func (h *svgHandle) Attach() {
	if h.attached {
		return
	}
	h.attached = true
	h.surface.attached = append(h.surface.attached, h)
}

func (h *svgHandle) Detach() {
	if !h.attached {
		return
	}
	h.attached = false
	if i := slices.Index(h.surface.attached, h); i >= 0 {
		h.surface.attached = slices.Delete(h.surface.attached, i, i+1)
	}
}

// LiveToSVG charts live particle counts over time as a single path.
func LiveToSVG(live []float64, width, height int, strokeColor string) string {
	if len(live) < 2 {
		return ""
	}

	peak := 0.0
	for _, v := range live {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}
	// headroom
	peak *= 1.1

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	last := float64(len(live) - 1)
	for i, v := range live {
		x := float64(i) / last * float64(width)
		y := float64(height) - v/peak*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

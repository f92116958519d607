package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Brightness levels, faintest first.
const (
	levelFaint = iota
	levelDim
	levelBright
	levelHot
	numLevels
)

const emptyLevel = -1

type cell struct {
	r     rune
	level int
}

// Canvas is a character grid where every cell carries a brightness level.
type Canvas struct {
	Width, Height int
	Grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]cell, h)
	for i := range c.Grid {
		c.Grid[i] = make([]cell, w)
	}
	c.Clear()
}

// Set writes r at column x, row y. Out of range writes are dropped.
func (c *Canvas) Set(x, y int, r rune, level int) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.Grid[y][x] = cell{r: r, level: level}
}

// At returns the rune at (x, y), or a space when empty or out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return ' '
	}
	return c.Grid[y][x].r
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = cell{r: ' ', level: emptyLevel}
		}
	}
}

// Render styles runs of equal level together to keep escape sequences short.
func (c *Canvas) Render(styles [numLevels]lipgloss.Style) string {
	var b strings.Builder
	var run strings.Builder
	for y, row := range c.Grid {
		level := emptyLevel
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if level == emptyLevel {
				b.WriteString(run.String())
			} else {
				b.WriteString(styles[level].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.level != level {
				flush()
				level = cl.level
			}
			run.WriteRune(cl.r)
		}
		flush()
		if y < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders without styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for y, row := range c.Grid {
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		if y < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// levelFor maps a glyph's scale to a brightness level.
func levelFor(scale float64) int {
	switch {
	case scale > 0.75:
		return levelHot
	case scale > 0.5:
		return levelBright
	case scale > 0.25:
		return levelDim
	default:
		return levelFaint
	}
}

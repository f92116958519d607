package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasSetAndAt(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1, '1', levelHot)
	c.Set(-1, 0, 'x', levelHot)
	c.Set(4, 0, 'x', levelHot)
	c.Set(0, 2, 'x', levelHot)

	if got := c.At(1, 1); got != '1' {
		t.Errorf("expected '1' at (1,1), got %q", got)
	}
	if got := c.String(); got != "    \n 1  " {
		t.Errorf("unexpected canvas:\n%q", got)
	}
	if got := c.At(9, 9); got != ' ' {
		t.Errorf("expected blank out of range, got %q", got)
	}
}

func TestCanvasResizeClears(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(0, 0, '0', levelDim)
	c.Resize(2, 1)
	if c.Width != 2 || c.Height != 1 {
		t.Fatalf("expected 2x1, got %dx%d", c.Width, c.Height)
	}
	if c.String() != "  " {
		t.Errorf("expected cleared canvas, got %q", c.String())
	}
	c.Resize(-1, -1)
	if c.Width != 0 || c.Height != 0 {
		t.Errorf("expected negative sizes clamped to 0, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvasRenderKeepsGlyphs(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(0, 0, '0', levelFaint)
	c.Set(1, 0, '1', levelFaint)
	var styles [numLevels]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
	}
	if got := c.Render(styles); !strings.Contains(got, "01") {
		t.Errorf("expected rendered run to contain 01, got %q", got)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{0.99, levelHot},
		{0.76, levelHot},
		{0.6, levelBright},
		{0.3, levelDim},
		{0.25, levelFaint},
		{0, levelFaint},
		{-0.01, levelFaint},
	}
	for _, tt := range tests {
		if got := levelFor(tt.scale); got != tt.want {
			t.Errorf("levelFor(%v): expected %d, got %d", tt.scale, tt.want, got)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 3); got != "▁▁▁" {
		t.Errorf("expected flat line, got %q", got)
	}
	if got := Sparkline([]float64{0, 7, 14}, 2); got != "▄█" {
		t.Errorf("expected last two values scaled, got %q", got)
	}
	if got := Sparkline([]float64{1}, 0); got != "" {
		t.Errorf("expected empty for zero width, got %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "matrix" {
		t.Error("expected unknown theme to fall back to matrix")
	}
	seen := map[string]bool{}
	th := ThemeMatrix
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != ThemeMatrix.Name {
		t.Errorf("expected NextTheme to cycle all %d themes, saw %v", len(Themes), seen)
	}
	if names := ThemeNames(); len(names) != len(Themes) {
		t.Errorf("expected %d names, got %d", len(Themes), len(names))
	}
}

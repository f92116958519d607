package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bitleak/internal/config"
	"github.com/san-kum/bitleak/internal/script"
	"github.com/san-kum/bitleak/internal/trail"
)

const (
	defaultCols = 80
	defaultRows = 24
	historyLen  = 240
	statsRows   = 7
)

// FrameMsg carries the refresh that flushes the frame queue.
type FrameMsg time.Time

// Model is the Bubble Tea model hosting one EffectController.
type Model struct {
	cfg      *config.Config
	theme    Theme
	fx       *trail.EffectController
	queue    *trail.FrameQueue
	surface  *Surface
	input    *MouseInput
	button   *Button
	recorder *script.Recorder
	canvas   *Canvas
	start    time.Time
	seed     int64

	width, height int
	ticking       bool
	showStats     bool
	showHelp      bool
	history       []float64
}

// NewModel builds and mounts the effect. With record set, everything the
// bound tracker receives is kept for Recording.
func NewModel(cfg *config.Config, record bool) Model {
	m := Model{
		cfg:     cfg,
		theme:   GetTheme(cfg.Display.Theme),
		queue:   trail.NewFrameQueue(),
		surface: NewSurface(),
		input:   NewMouseInput(cfg.Display.CellWidth, cfg.Display.CellHeight),
		button:  NewButton(),
		start:   time.Now(),
		seed:    trail.ResolveSeed(cfg.Seed),
		width:   defaultCols,
		height:  defaultRows,
	}
	m.canvas = NewCanvas(m.width, m.canvasRows())
	m.button.Place(0, m.height-1)

	var src trail.InputSource = m.input
	if record {
		m.recorder = script.NewRecorder(m.input, m.clock)
		src = m.recorder
	}

	m.fx = trail.New(trail.Options{
		Tuning:    cfg.Tuning(),
		Random:    trail.NewSource(m.seed),
		Surface:   m.surface,
		Scheduler: m.queue,
		Input:     src,
		Control:   m.button,
		Viewport: trail.Point{
			X: float64(m.width) * cfg.Display.CellWidth,
			Y: float64(m.height) * cfg.Display.CellHeight,
		},
	})
	m.fx.Mount()
	m.ticking = m.queue.Pending() > 0
	return m
}

func (m Model) Init() tea.Cmd {
	if m.ticking {
		return m.tick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "enter":
			m.activate()
		case "s":
			m.showStats = !m.showStats
			m.layout()
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.input.HandleResize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.button.Contains(msg.X, msg.Y) {
			m.activate()
			break
		}
		m.input.HandleMouse(msg)
	case FrameMsg:
		m.ticking = false
		m.queue.Flush(m.elapsed(time.Time(msg)))
		m.sample()
	}

	if !m.ticking && m.queue.Pending() > 0 {
		m.ticking = true
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return HelpBox.Render(helpText)
	}

	m.canvas.Clear()
	m.surface.Draw(m.canvas, m.cfg.Display.CellWidth, m.cfg.Display.CellHeight)

	var s strings.Builder
	s.WriteString(m.canvas.Render(m.theme.glyphStyles()))
	s.WriteByte('\n')
	if m.showStats {
		s.WriteString(m.statsView())
		s.WriteByte('\n')
	}
	s.WriteString(m.statusBar())
	return s.String()
}

// Effect exposes the hosted controller.
func (m Model) Effect() *trail.EffectController { return m.fx }

// Recording returns the recorded input, or nil when not recording.
func (m Model) Recording(name string) *script.Script {
	if m.recorder == nil {
		return nil
	}
	viewport := trail.Point{
		X: float64(m.width) * m.cfg.Display.CellWidth,
		Y: float64(m.height) * m.cfg.Display.CellHeight,
	}
	return m.recorder.Script(name, m.seed, m.cfg.Display.FPS, viewport)
}

func (m *Model) activate() {
	if m.recorder != nil {
		m.recorder.Toggle()
	}
	m.button.Activate()
}

func (m *Model) layout() {
	m.canvas.Resize(m.width, m.canvasRows())
	m.button.Place(0, m.height-1)
}

func (m Model) canvasRows() int {
	rows := m.height - 1
	if m.showStats {
		rows -= statsRows
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

func (m *Model) sample() {
	m.history = append(m.history, float64(m.fx.Particles().Len()))
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.Display.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) clock() float64 {
	return m.elapsed(time.Now())
}

// elapsed is milliseconds since the model was built.
func (m Model) elapsed(t time.Time) float64 {
	return float64(t.Sub(m.start).Microseconds()) / 1000
}

func (m Model) statsView() string {
	if len(m.history) < 2 {
		return MetricLabel.Render("collecting samples...") + strings.Repeat("\n", statsRows-1)
	}
	width := m.width - 10
	if width > 120 {
		width = 120
	}
	if width < 10 {
		width = 10
	}
	chart := asciigraph.Plot(m.history,
		asciigraph.Height(statsRows-2),
		asciigraph.Width(width),
		asciigraph.Caption("live particles"))
	return lipgloss.NewStyle().Foreground(m.theme.Levels[levelBright]).Render(chart)
}

func (m Model) statusBar() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	parts := []string{
		m.button.Render(buttonStyle(m.theme)),
		MetricLabel.Render("live ") + MetricValue.Render(fmt.Sprintf("%d", m.fx.Particles().Len())),
		muted.Render(Sparkline(m.history, 16)),
		MetricLabel.Render("theme ") + muted.Render(m.theme.Name),
	}
	if m.recorder != nil {
		parts = append(parts, StatusRecording.Render(fmt.Sprintf("REC %d", m.recorder.Len())))
	}
	parts = append(parts, KeyHint.Render("?:help q:quit"))
	return strings.Join(parts, "  ")
}

const helpText = `KEYBOARD & MOUSE

  Space/Enter  Toggle the effect
  Click button Toggle the effect
  Move mouse   Leak bits at the pointer
  Drag/click   Leak bits as a touch
  S            Live particle chart
  T            Cycle themes
  ?            Toggle this help
  Q            Quit`

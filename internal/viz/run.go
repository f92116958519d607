package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bitleak/internal/config"
	"github.com/san-kum/bitleak/internal/script"
)

// Run hosts the effect until the user quits. When record is set, the
// returned script holds the session's input.
func Run(cfg *config.Config, record bool) (*script.Script, error) {
	p := tea.NewProgram(NewModel(cfg, record), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("terminal host: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return m.Recording("terminal session"), nil
}

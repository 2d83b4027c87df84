package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

// Run starts the terminal renderer and blocks until the user quits. The
// policy must have been created with bridge as its surface.
func Run(policy *theme.Policy, bridge *Bridge, threshold int) error {
	p := tea.NewProgram(New(policy, threshold), tea.WithAltScreen(), tea.WithMouseCellMotion())
	bridge.Attach(p)
	defer bridge.Attach(nil)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/arc/internal/models"
)

// RunBoardTUI opens the board for p and reports whether p was modified.
func RunBoardTUI(p *models.Project, pageSize int) (bool, error) {
	model := NewBoardModel(p, pageSize)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BoardModel)
	if !ok {
		return false, fmt.Errorf("unexpected board model %T", finalModel)
	}
	return m.Changed(), nil
}

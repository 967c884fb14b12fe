package controller

import (
	"context"

	"rgbctl/internal/tui/model"
	"rgbctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the profile editor. The
// program stops when ctx is cancelled.
func NewProgram(ctx context.Context, cfg model.TUIConfig, logChannel <-chan logging.LogEntry) *tea.Program {
	m := model.InitialModel(cfg, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}

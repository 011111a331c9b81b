// Package tui provides the Bubble Tea front end for the runner.
// It drives the engine's fixed tick, maps keys to engine input, and draws
// snapshots into a terminal screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/engine"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one frame period from now.
func tickCmd() tea.Cmd {
	return tea.Tick(engine.FramePeriod, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

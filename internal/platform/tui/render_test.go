package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
)

func TestProjection(t *testing.T) {
	p := Projection{CellWidth: 8, CellHeight: 16}

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{7.9, 15.9, 0, 0},
		{8, 16, 1, 1},
		{72, 163.2, 9, 10},
		{-1, -1, -1, -1},
		{-64, -32, -8, -2},
	}

	for _, tc := range tests {
		if got := p.Col(tc.x); got != tc.col {
			t.Errorf("Col(%v) = %d, expected %d", tc.x, got, tc.col)
		}
		if got := p.Row(tc.y); got != tc.row {
			t.Errorf("Row(%v) = %d, expected %d", tc.y, got, tc.row)
		}
	}
}

func TestDrawSnapshotPlacesEntities(t *testing.T) {
	eng := engine.New(engine.WithSeed(3))
	eng.Resize(640, 384)
	snap := eng.Snapshot()

	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, snap, NewSpriteRegistry(), Projection{CellWidth: 8, CellHeight: 16})

	// groundY = 384*55/100 = 211.2 -> row 13.
	if got := screen.GetCell(0, 13); got.Rune != GroundChar || got.Color != core.ColorGray {
		t.Errorf("ground cell = %q/%d, expected gray %q", got.Rune, got.Color, GroundChar)
	}

	// Character at (72, 163.2) -> col 9, row 10; the head starts three columns in.
	cell := screen.GetCell(12, 10)
	if cell.Rune != '▄' || cell.Color != core.ColorGreen {
		t.Errorf("character cell = %q/%d, expected green '▄'", cell.Rune, cell.Color)
	}

	if !strings.Contains(screen.String(), "PLAY GAME") {
		t.Error("idle world should show the play chip")
	}
}

func TestDrawSnapshotHidesChipWhilePlaying(t *testing.T) {
	eng := engine.New(engine.WithSeed(3))
	eng.Resize(640, 384)
	eng.RequestStart()

	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, eng.Snapshot(), NewSpriteRegistry(), Projection{CellWidth: 8, CellHeight: 16})

	if strings.Contains(screen.String(), "PLAY GAME") {
		t.Error("play chip drawn during a run")
	}
}

func TestDrawPlayChipShowsLastScore(t *testing.T) {
	screen := core.NewScreen(40, 20)
	drawPlayChip(screen, engine.Snapshot{Score: 17})

	if !strings.Contains(screen.String(), "SCORE: 17") {
		t.Errorf("chip should show the last score:\n%s", screen.String())
	}
}

func TestHudLine(t *testing.T) {
	line := hudLine(engine.Snapshot{LiveScore: 4, MaxScore: 9}, "saved", 80)
	for _, want := range []string{"SCORE: 4", "MAX SCORE: 9", "saved"} {
		if !strings.Contains(line, want) {
			t.Errorf("hud %q missing %q", line, want)
		}
	}
}

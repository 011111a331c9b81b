package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
)

// GroundChar is drawn along the running surface.
const GroundChar = '▁'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Projection maps world units to terminal cells.
type Projection struct {
	CellWidth  float64
	CellHeight float64
}

// Col returns the column containing world x.
func (p Projection) Col(x float64) int {
	return int(math.Floor(x / p.CellWidth))
}

// Row returns the row containing world y.
func (p Projection) Row(y float64) int {
	return int(math.Floor(y / p.CellHeight))
}

// DrawSnapshot draws the world into dst: ground, decorations, obstacles,
// then the character on top.
func DrawSnapshot(dst *core.Screen, snap engine.Snapshot, sprites *assets.Registry[Sprite], p Projection) {
	dst.Clear()

	dst.DrawHLine(0, p.Row(snap.GroundY), dst.Width(), GroundChar, core.ColorGray)

	for _, d := range snap.Decorations {
		drawSprite(dst, sprites.Decoration(d, snap.Tick), p, d.Left, d.Top)
	}
	for _, o := range snap.Obstacles {
		drawSprite(dst, sprites.Obstacle(o.Type, snap.Tick), p, o.Left, o.Top)
	}
	c := snap.Character
	drawSprite(dst, sprites.Avatar(c.Avatar, snap.Tick), p, c.Left, c.Top)

	if !snap.IsPlaying {
		drawPlayChip(dst, snap)
	}
}

func drawSprite(dst *core.Screen, s Sprite, p Projection, left, top float64) {
	dst.DrawSprite(p.Col(left), p.Row(top), s.Lines, s.Color)
}

// drawPlayChip draws the start prompt, with the last score after a run.
func drawPlayChip(dst *core.Screen, snap engine.Snapshot) {
	title := "▶ PLAY GAME"
	subtitle := "press enter to start"
	if snap.Score > 0 {
		subtitle = fmt.Sprintf("SCORE: %d", snap.Score)
	}

	w := dst.Width()
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := core.Max(0, (dst.Height()-boxH)/4)

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// hudLine renders the score bar above the playfield.
func hudLine(snap engine.Snapshot, status string, width int) string {
	line := hudStyle.Render(fmt.Sprintf(" SCORE: %d   MAX SCORE: %d", snap.LiveScore, snap.MaxScore))
	if status != "" {
		line += "   " + statusStyle.Render(status)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

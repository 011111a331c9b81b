package tui

import (
	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/world"
)

// Sprite is rune art drawn with its top-left corner at an entity's position.
type Sprite struct {
	Lines []string
	Color core.Color
}

func single(c core.Color, lines ...string) assets.Image[Sprite] {
	return assets.SingleFrame[Sprite]{Frame: Sprite{Lines: lines, Color: c}}
}

func dual(c core.Color, first, second []string) assets.Image[Sprite] {
	return assets.DualFrame[Sprite]{
		First:  Sprite{Lines: first, Color: c},
		Second: Sprite{Lines: second, Color: c},
	}
}

// NewSpriteRegistry returns the terminal sprites. Sizes assume the default
// 8x16 world units per cell: the character is 6x3 cells, obstacles 3x3.
func NewSpriteRegistry() *assets.Registry[Sprite] {
	const (
		head = "   ▄█▀"
		body = "▀████ "
	)

	return assets.NewRegistry(assets.Set[Sprite]{
		Waiting: single(core.ColorGreen, head, body, " ▌▌   "),
		Running: dual(core.ColorGreen,
			[]string{head, body, " ▌  ▐ "},
			[]string{head, body, "  ▌▐  "},
		),
		Jumping: dual(core.ColorGreen,
			[]string{head, body, " ▀  ▀ "},
			[]string{head, body, " ▘  ▝ "},
		),
		Crashed: single(core.ColorBrightRed, "   ▄█x", body, " ▌  ▐ "),
		Obstacles: [world.ObstacleTypeCount]assets.Image[Sprite]{
			single(core.ColorOrange, " ¡ ", "▄█▄", "███"),
			single(core.ColorMagenta, "▄▀▄", "█ █", "▀▄▀"),
			single(core.ColorYellow, " ● ", "\\█/", " █ "),
		},
		Clouds: [world.DecorationTypeCount]assets.Image[Sprite]{
			single(core.ColorWhite, "  .--.  ", " (    ) ", "  `--'  "),
			single(core.ColorWhite, " .-.    ", "(   )-. ", " `-(   )"),
			single(core.ColorWhite, "   .--. ", "__(    )"),
		},
		Bird: dual(core.ColorGray, []string{"\\v/"}, []string{"-v-"}),
	})
}

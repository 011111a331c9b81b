// Package imgexport rasterises snapshots to PNG images.
package imgexport

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-dino/internal/assets"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/world"
)

// Output scale limits.
const (
	MinScale = 0.1
	MaxScale = 8
)

// Palette colors.
var (
	Background = color.RGBA{0xfd, 0xff, 0xfd, 0xff}
	Ground     = color.RGBA{0x78, 0x78, 0x78, 0xff}
	Text       = color.RGBA{0x41, 0x41, 0x41, 0xff}
)

// Shape is a flat-colored box drawn for one frame. Width and height are in
// world units; zero means "use the collision box".
type Shape struct {
	Color color.RGBA
	W, H  float64
}

// NewRegistry returns the shapes used for PNG export.
func NewRegistry() *assets.Registry[Shape] {
	cloud := func(c color.RGBA) assets.Image[Shape] {
		return assets.SingleFrame[Shape]{Frame: Shape{Color: c, W: engine.DecorationWidth, H: 24}}
	}
	dessert := func(c color.RGBA) assets.Image[Shape] {
		return assets.SingleFrame[Shape]{Frame: Shape{Color: c}}
	}
	dino := color.RGBA{0x53, 0x53, 0x53, 0xff}

	return assets.NewRegistry(assets.Set[Shape]{
		Waiting: assets.SingleFrame[Shape]{Frame: Shape{Color: dino}},
		Running: assets.DualFrame[Shape]{
			First:  Shape{Color: dino},
			Second: Shape{Color: color.RGBA{0x60, 0x60, 0x60, 0xff}},
		},
		Jumping: assets.DualFrame[Shape]{
			First:  Shape{Color: color.RGBA{0x3a, 0x3a, 0x3a, 0xff}},
			Second: Shape{Color: dino},
		},
		Crashed: assets.SingleFrame[Shape]{Frame: Shape{Color: color.RGBA{0xc0, 0x30, 0x30, 0xff}}},
		Obstacles: [world.ObstacleTypeCount]assets.Image[Shape]{
			dessert(color.RGBA{0xe0, 0x8a, 0x3c, 0xff}),
			dessert(color.RGBA{0xd9, 0x5f, 0xa0, 0xff}),
			dessert(color.RGBA{0x8c, 0x5a, 0x3c, 0xff}),
		},
		Clouds: [world.DecorationTypeCount]assets.Image[Shape]{
			cloud(color.RGBA{0xe6, 0xe6, 0xe6, 0xff}),
			cloud(color.RGBA{0xdc, 0xdc, 0xdc, 0xff}),
			cloud(color.RGBA{0xd2, 0xd2, 0xd2, 0xff}),
		},
		Bird: assets.DualFrame[Shape]{
			First:  Shape{Color: color.RGBA{0x50, 0x50, 0x50, 0xff}, W: 32, H: 12},
			Second: Shape{Color: color.RGBA{0x50, 0x50, 0x50, 0xff}, W: 32, H: 6},
		},
	})
}

// Renderer draws snapshots with gg.
type Renderer struct {
	registry *assets.Registry[Shape]
	scale    float64
}

// NewRenderer creates a renderer. scale multiplies the output resolution.
func NewRenderer(registry *assets.Registry[Shape], scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	scale = core.ClampF(scale, MinScale, MaxScale)
	return &Renderer{registry: registry, scale: scale}
}

// Image renders snap to an in-memory image.
func (r *Renderer) Image(snap engine.Snapshot) image.Image {
	w := int(math.Max(1, math.Ceil(snap.Size.Width*r.scale)))
	h := int(math.Max(1, math.Ceil(snap.Size.Height*r.scale)))

	dc := gg.NewContext(w, h)
	dc.SetColor(Background)
	dc.Clear()
	dc.Scale(r.scale, r.scale)

	// Ground band from the running surface down.
	dc.SetColor(Ground)
	dc.DrawRectangle(0, snap.GroundY, snap.Size.Width, math.Max(0, snap.Size.Height-snap.GroundY))
	dc.Fill()

	for _, d := range snap.Decorations {
		r.fill(dc, r.registry.Decoration(d, snap.Tick), d.Left, d.Top, engine.DecorationWidth, 24)
	}
	for _, o := range snap.Obstacles {
		r.fill(dc, r.registry.Obstacle(o.Type, snap.Tick), o.Left, o.Top, engine.ObstacleWidth, engine.ObstacleHeight)
	}
	c := snap.Character
	r.fill(dc, r.registry.Avatar(c.Avatar, snap.Tick), c.Left, c.Top, engine.CharacterWidth, engine.CharacterHeight)

	dc.SetColor(Text)
	dc.DrawString(fmt.Sprintf("SCORE: %d  MAX SCORE: %d", snap.LiveScore, snap.MaxScore), 8, 16)

	dc.Identity()
	return dc.Image()
}

func (r *Renderer) fill(dc *gg.Context, s Shape, left, top, w, h float64) {
	if s.W > 0 {
		w = s.W
	}
	if s.H > 0 {
		h = s.H
	}
	dc.SetColor(s.Color)
	dc.DrawRectangle(left, top, w, h)
	dc.Fill()
}

// WritePNG encodes snap as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, snap engine.Snapshot) error {
	if err := png.Encode(w, r.Image(snap)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes snap to path, creating parent directories.
func (r *Renderer) SavePNG(path string, snap engine.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := gg.SavePNG(path, r.Image(snap)); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// Thumbnail renders snap scaled down to width pixels, keeping the aspect ratio.
func (r *Renderer) Thumbnail(snap engine.Snapshot, width int) image.Image {
	return imaging.Resize(r.Image(snap), width, 0, imaging.Lanczos)
}

// SaveThumbnail writes a width-pixel wide thumbnail of snap to path.
func (r *Renderer) SaveThumbnail(path string, snap engine.Snapshot, width int) error {
	if width <= 0 {
		return fmt.Errorf("thumbnail width must be positive, got %d", width)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := imaging.Save(r.Thumbnail(snap, width), path); err != nil {
		return fmt.Errorf("save thumbnail %s: %w", path, err)
	}
	return nil
}

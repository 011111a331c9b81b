package imgexport

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/engine"
)

func sized(t *testing.T) engine.Snapshot {
	t.Helper()
	e := engine.New(engine.WithSeed(1))
	e.Resize(400, 700)
	return e.Snapshot()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestImageDrawsWorld(t *testing.T) {
	snap := sized(t)
	img := NewRenderer(NewRegistry(), 1).Image(snap)

	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 700 {
		t.Fatalf("image size = %dx%d, expected 400x700", b.Dx(), b.Dy())
	}

	// Character box center, (72,337) + 24.
	if got := rgba(img.At(96, 361)); got == Background || got == Ground {
		t.Errorf("character not drawn, pixel = %v", got)
	}
	// Ground band well away from sprites.
	if got := rgba(img.At(300, 650)); got != Ground {
		t.Errorf("ground pixel = %v, expected %v", got, Ground)
	}
	// Open sky to the left of the character at ground level minus a bit.
	if got := rgba(img.At(10, 370)); got != Background {
		t.Errorf("sky pixel = %v, expected %v", got, Background)
	}
}

func TestImageScale(t *testing.T) {
	snap := sized(t)
	img := NewRenderer(NewRegistry(), 0.5).Image(snap)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 350 {
		t.Errorf("scaled image size = %dx%d, expected 200x350", b.Dx(), b.Dy())
	}
}

func TestImageDegenerateSnapshot(t *testing.T) {
	img := NewRenderer(NewRegistry(), 1).Image(engine.New().Snapshot())
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("degenerate image size = %dx%d, expected 1x1", b.Dx(), b.Dy())
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(NewRegistry(), 1).WritePNG(&buf, sized(t)); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("decoded width = %d, expected 400", img.Bounds().Dx())
	}
}

func TestWritePNGMatchesImage(t *testing.T) {
	snap := sized(t)
	r := NewRenderer(NewRegistry(), 1)
	want := r.Image(snap)

	var buf bytes.Buffer
	if err := r.WritePNG(&buf, snap); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, expected %v", got.Bounds(), want.Bounds())
	}

	// Character box, ground band and sky.
	for _, p := range [][2]int{{96, 361}, {300, 650}, {10, 370}, {0, 0}, {399, 699}} {
		if g, w := rgba(got.At(p[0], p[1])), rgba(want.At(p[0], p[1])); g != w {
			t.Errorf("pixel %v = %v, expected %v", p, g, w)
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frame.png")
	if err := NewRenderer(NewRegistry(), 1).SavePNG(path, sized(t)); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}
}

func TestThumbnailKeepsAspect(t *testing.T) {
	img := NewRenderer(NewRegistry(), 1).Thumbnail(sized(t), 100)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 175 {
		t.Errorf("thumbnail size = %dx%d, expected 100x175", b.Dx(), b.Dy())
	}
}

func TestSaveThumbnail(t *testing.T) {
	r := NewRenderer(NewRegistry(), 1)
	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := r.SaveThumbnail(path, sized(t), 80); err != nil {
		t.Fatalf("SaveThumbnail() error: %v", err)
	}
	if err := r.SaveThumbnail(path, sized(t), 0); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestScaleClamped(t *testing.T) {
	e := engine.New(engine.WithSeed(1))
	e.Resize(10, 10)

	img := NewRenderer(NewRegistry(), 100).Image(e.Snapshot())
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Errorf("image size = %dx%d, expected 80x80", b.Dx(), b.Dy())
	}
}

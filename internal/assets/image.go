// Package assets maps the simulation's visual states to concrete frames.
//
// An Image is either a single frame or a two-frame animation. Renderers
// build one Registry at startup and pass it down explicitly; nothing here
// is global.
package assets

// FlipEvery is the animation period: tick%FlipEvery == 0 shows the first
// frame of a two-frame image, every other tick shows the second.
const FlipEvery = 5

// Image is a sum type: SingleFrame[T] or DualFrame[T].
type Image[T any] interface {
	isImage()
}

// SingleFrame is a static image.
type SingleFrame[T any] struct {
	Frame T
}

// DualFrame is a two-frame animation.
type DualFrame[T any] struct {
	First  T
	Second T
}

func (SingleFrame[T]) isImage() {}
func (DualFrame[T]) isImage()   {}

// SelectFrame picks the frame of img to show on the given tick.
func SelectFrame[T any](img Image[T], tick int64) T {
	switch v := img.(type) {
	case SingleFrame[T]:
		return v.Frame
	case DualFrame[T]:
		if tick%FlipEvery == 0 {
			return v.First
		}
		return v.Second
	}
	var zero T
	return zero
}

package renderer

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// Buffer is a row-major linear-RGB image buffer, origin at the top-left.
// It is the core's native output: no gamma, no clamping, no encoding --
// those belong to a caller like cmd/render.
type Buffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

func (b *Buffer) index(x, y int) int {
	return y*b.Width + x
}

// At returns the color at (x, y).
func (b *Buffer) At(x, y int) core.Vec3 {
	return b.Pixels[b.index(x, y)]
}

// Set writes the color at (x, y).
func (b *Buffer) Set(x, y int, v core.Vec3) {
	b.Pixels[b.index(x, y)] = v
}

// Copyright © 2024 Galvanized Logic Inc.

package render

// buffer.go defines the renderer-facing consumer contract: a pixel buffer
// and the interface bodies/collision-table debug data are read through.
// No rasterization (clipping, depth test, triangle fill) lives here or
// anywhere in this module — that stays an external collaborator, per the
// renderer non-goal.

import "github.com/ironvale/rigidphys/physics"

// PixelStride is the byte count per pixel: red, green, blue, alpha.
const PixelStride = 4

// PixelBuffer is a row-major, top-down RGBA frame buffer. The alpha byte
// is always 255.
type PixelBuffer struct {
	Width, Height int
	Pixels        []byte
}

// NewPixelBuffer allocates a buffer of width*height*PixelStride bytes,
// opaque black.
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{Width: width, Height: height, Pixels: make([]byte, width*height*PixelStride)}
	for i := 3; i < len(b.Pixels); i += PixelStride {
		b.Pixels[i] = 255
	}
	return b
}

// Index returns the byte offset of pixel (x,y).
func (b *PixelBuffer) Index(x, y int) int { return (x + y*b.Width) * PixelStride }

// Set writes an opaque color at (x,y).
func (b *PixelBuffer) Set(x, y int, r, g, bl byte) {
	i := b.Index(x, y)
	b.Pixels[i], b.Pixels[i+1], b.Pixels[i+2], b.Pixels[i+3] = r, g, bl, 255
}

// At reads the color at (x,y).
func (b *PixelBuffer) At(x, y int) (r, g, bl, a byte) {
	i := b.Index(x, y)
	return b.Pixels[i], b.Pixels[i+1], b.Pixels[i+2], b.Pixels[i+3]
}

// Renderable is what a host renderer reads from each frame: the body
// list (for polyhedron edge/face drawing, or a caller-supplied mesh keyed
// by UID) and, in debug mode, the collision table for witness/contact
// overlays.
type Renderable interface {
	Bodies() []*physics.RigidBody
	CollisionTable() *physics.CollisionTable
}

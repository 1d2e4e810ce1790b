// Copyright © 2024 Galvanized Logic Inc.

package render

import "testing"

func TestNewPixelBufferIsOpaqueBlack(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	if len(b.Pixels) != 4*3*PixelStride {
		t.Fatalf("expected %d bytes, got %d", 4*3*PixelStride, len(b.Pixels))
	}
	r, g, bl, a := b.At(0, 0)
	if r != 0 || g != 0 || bl != 0 || a != 255 {
		t.Errorf("expected opaque black, got (%d,%d,%d,%d)", r, g, bl, a)
	}
}

func TestPixelBufferIndexIsRowMajorTopDown(t *testing.T) {
	b := NewPixelBuffer(4, 3)
	if got := b.Index(0, 1); got != 4*PixelStride {
		t.Errorf("expected row 1 to start at byte %d, got %d", 4*PixelStride, got)
	}
}

func TestPixelBufferSetAndAt(t *testing.T) {
	b := NewPixelBuffer(2, 2)
	b.Set(1, 0, 10, 20, 30)
	r, g, bl, a := b.At(1, 0)
	if r != 10 || g != 20 || bl != 30 || a != 255 {
		t.Errorf("expected (10,20,30,255), got (%d,%d,%d,%d)", r, g, bl, a)
	}
	r, g, bl, a = b.At(0, 0)
	if r != 0 || g != 0 || bl != 0 || a != 255 {
		t.Error("setting one pixel should not disturb another")
	}
}

package display

import (
	"image"
	"image/color"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, maxW   int
		wantW, wantH int
	}{
		{"full figure", 4200, 2100, 1400, 1400, 700},
		{"already small", 800, 400, 1400, 800, 400},
		{"exact fit", 1400, 700, 1400, 1400, 700},
		{"very wide", 10000, 5, 1000, 1000, 1},
		{"invalid", 0, 0, 1200, 1200, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := WindowSize(tt.w, tt.h, tt.maxW)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestPreview_Downscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out := Preview(src, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), out.Bounds())
	r, g, b, a := out.At(50, 25).RGBA()
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0, g, 0x200)
	assert.InDelta(t, 0, b, 0x200)
	assert.InDelta(t, 0xffff, a, 0x200)
}

func TestPreview_SmallImageUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 20))
	assert.Same(t, src, Preview(src, 100))
}

func TestAvailable_HeadlessLinux(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	if runtime.GOOS == "linux" {
		assert.False(t, Available())
	}
	t.Setenv("DISPLAY", ":0")
	assert.True(t, Available())
}

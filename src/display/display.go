// Package display shows a rendered chart in a desktop window.
package display

import (
	"image"
	"os"
	"runtime"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	xdraw "golang.org/x/image/draw"
)

// MaxPreviewWidth bounds the on-screen image; the saved PNG keeps full resolution.
const MaxPreviewWidth = 1400

// Available reports whether a window can be opened. X11/Wayland systems without a display
// server (CI, SSH sessions) are treated as headless.
func Available() bool {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

// WindowSize scales (imgW, imgH) down to at most maxW wide, keeping the aspect ratio.
func WindowSize(imgW, imgH, maxW int) (int, int) {
	if imgW <= 0 || imgH <= 0 {
		return maxW, maxW / 2
	}
	if imgW <= maxW {
		return imgW, imgH
	}
	h := int(float64(imgH) * float64(maxW) / float64(imgW))
	if h < 1 {
		h = 1
	}
	return maxW, h
}

// Preview returns img downscaled to fit maxW, or img itself when it already fits.
func Preview(img image.Image, maxW int) image.Image {
	b := img.Bounds()
	w, h := WindowSize(b.Dx(), b.Dy(), maxW)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Show opens a window titled title with the chart and blocks until it is closed.
func Show(title string, img image.Image) {
	preview := Preview(img, MaxPreviewWidth)
	pb := preview.Bounds()

	a := app.NewWithID("io.github.tsotchke.pinn.lossviz")
	w := a.NewWindow(title)
	ci := canvas.NewImageFromImage(preview)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(float32(pb.Dx())/2, float32(pb.Dy())/2))
	w.SetContent(ci)
	w.Resize(fyne.NewSize(float32(pb.Dx()), float32(pb.Dy())))
	w.ShowAndRun()
}

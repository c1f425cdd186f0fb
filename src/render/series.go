package render

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// marker is the glyph drawn at each data point on top of the line.
type marker int

const (
	markerNone  marker = iota
	markerCircle       // drawn by go-chart through Style.DotWidth
	markerCross
)

// annotation labels a data point with text placed at an offset and an arrow back to it.
type annotation struct {
	X, Y   float64 // data point the arrow points at
	DX, DY float64 // text offset in data units
	Label  string
	Color  drawing.Color // defaults to the series stroke color
}

// lineSeries is a continuous series that tolerates being empty and can draw cross
// markers and arrow annotations, which go-chart's own series do not offer.
type lineSeries struct {
	chart.ContinuousSeries
	Marker      marker
	MarkerSize  float64 // half the cross width in px
	Annotations []annotation
	ArrowWidth  float64 // px
	ArrowHead   float64 // px
}

// Validate accepts an empty series so a log without records still yields a chart.
func (s lineSeries) Validate() error {
	if len(s.XValues) == 0 && len(s.YValues) == 0 {
		return nil
	}
	return s.ContinuousSeries.Validate()
}

// Render draws the line, then markers, then annotations.
func (s lineSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	if s.Len() == 0 {
		return
	}
	s.ContinuousSeries.Render(r, canvasBox, xrange, yrange, defaults)
	style := s.Style.InheritFrom(defaults)

	toPx := func(x, y float64) (int, int) {
		return canvasBox.Left + xrange.Translate(x), canvasBox.Bottom - yrange.Translate(y)
	}

	if s.Marker == markerCross && s.MarkerSize > 0 {
		r.SetStrokeDashArray(nil)
		r.SetStrokeColor(style.GetStrokeColor())
		r.SetStrokeWidth(style.GetStrokeWidth())
		d := int(math.Round(s.MarkerSize))
		for i := 0; i < s.Len(); i++ {
			x, y := s.GetValues(i)
			if math.IsNaN(y) {
				continue
			}
			px, py := toPx(x, y)
			r.MoveTo(px-d, py-d)
			r.LineTo(px+d, py+d)
			r.Stroke()
			r.MoveTo(px-d, py+d)
			r.LineTo(px+d, py-d)
			r.Stroke()
		}
	}

	for _, a := range s.Annotations {
		px, py := toPx(a.X, a.Y)
		tx, ty := toPx(a.X+a.DX, a.Y+a.DY)

		col := a.Color
		if col.IsZero() {
			col = style.GetStrokeColor()
		}
		r.SetFont(style.GetFont())
		r.SetFontSize(style.GetFontSize())
		r.SetFontColor(col)
		tb := r.MeasureText(a.Label)

		// keep the label inside the plot area
		tx = clampInt(tx, canvasBox.Left, canvasBox.Right-tb.Width())
		ty = clampInt(ty, canvasBox.Top+tb.Height(), canvasBox.Bottom)
		r.Text(a.Label, tx, ty)

		// arrow starts at the label edge facing the point
		ax, ay := tx, ty-tb.Height()/2
		if px > tx+tb.Width() {
			ax = tx + tb.Width()
		}
		drawArrow(r, ax, ay, px, py, col, s.ArrowWidth, s.ArrowHead)
	}
}

// drawArrow strokes a line from (x0,y0) to (x1,y1) with an open head at (x1,y1).
func drawArrow(r chart.Renderer, x0, y0, x1, y1 int, col drawing.Color, width, head float64) {
	r.SetStrokeDashArray(nil)
	r.SetStrokeColor(col)
	r.SetStrokeWidth(width)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()

	if x0 == x1 && y0 == y1 {
		return
	}
	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	const spread = 25 * math.Pi / 180
	for _, a := range []float64{angle + spread, angle - spread} {
		hx := x1 - int(math.Round(head*math.Cos(a)))
		hy := y1 - int(math.Round(head*math.Sin(a)))
		r.MoveTo(x1, y1)
		r.LineTo(hx, hy)
		r.Stroke()
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package render draws the log-normalized training and validation loss chart.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tsotchke/PINN/src/logging"
	"github.com/tsotchke/PINN/src/trainlog"
)

// Figure geometry: 14x7 inches at 300 DPI.
const (
	DPI          = 300.0
	WidthInches  = 14.0
	HeightInches = 7.0

	YMax = 1.1

	TrainingSeriesName   = "Normalized Training Loss"
	ValidationSeriesName = "Normalized Validation Loss"
)

var (
	colorTraining   = drawing.ColorFromHex("0000FF")
	colorValidation = drawing.ColorFromHex("FFA500")
	colorGrid       = drawing.ColorFromHex("B0B0B0")
)

// Input is everything the chart needs. Loss and ValLoss are normalized values aligned
// with Epochs; RawValLoss selects which points get the min/max annotations.
type Input struct {
	Title      string
	Epochs     []int
	Loss       []float64
	ValLoss    []float64
	RawValLoss []float64
}

// pt converts typographic points to pixels at the figure DPI.
func pt(v float64) float64 { return v * DPI / 72 }

// Size returns the output image size in pixels.
func Size() (int, int) { return int(WidthInches * DPI), int(HeightInches * DPI) }

// BuildChart assembles the chart without rendering it.
func BuildChart(in Input) *chart.Chart {
	xs := make([]float64, len(in.Epochs))
	for i, e := range in.Epochs {
		xs[i] = float64(e)
	}
	xmin, xmax := epochRange(xs)

	training := lineSeries{
		ContinuousSeries: chart.ContinuousSeries{
			Name:    TrainingSeriesName,
			XValues: xs,
			YValues: in.Loss,
			Style: chart.Style{
				StrokeColor: colorTraining,
				StrokeWidth: pt(1.5),
				DotColor:    colorTraining,
				DotWidth:    pt(2),
			},
		},
		Marker: markerCircle,
	}
	validation := lineSeries{
		ContinuousSeries: chart.ContinuousSeries{
			Name:    ValidationSeriesName,
			XValues: xs,
			YValues: in.ValLoss,
			Style: chart.Style{
				StrokeColor:     colorValidation,
				StrokeWidth:     pt(1.5),
				StrokeDashArray: []float64{pt(5.5), pt(2.4)},
				FontSize:        10,
			},
		},
		Marker:      markerCross,
		MarkerSize:  pt(2),
		Annotations: extremaAnnotations(xs, in.ValLoss, in.RawValLoss),
		ArrowWidth:  pt(1.5),
		ArrowHead:   pt(6),
	}

	w, h := Size()
	ch := &chart.Chart{
		Title:      in.Title,
		TitleStyle: chart.Style{FontSize: 16},
		Width:      w,
		Height:     h,
		DPI:        DPI,
		Background: chart.Style{Padding: chart.Box{
			Top:    int(pt(36)),
			Left:   int(pt(18)),
			Right:  int(pt(24)),
			Bottom: int(pt(18)),
		}},
		XAxis: chart.XAxis{
			Name:           "Epoch",
			NameStyle:      chart.Style{FontSize: 14},
			Range:          &chart.ContinuousRange{Min: xmin, Max: xmax},
			Ticks:          epochTicks(xmin, xmax, 10),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           "Log-Normalized Loss",
			NameStyle:      chart.Style{FontSize: 14},
			Range:          &chart.ContinuousRange{Min: 0, Max: YMax},
			Ticks:          Ticks(0, YMax, 0.2),
			GridMajorStyle: gridStyle(),
		},
		Series: []chart.Series{training, validation},
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch, chart.Style{FontSize: 10})}
	return ch
}

func gridStyle() chart.Style {
	return chart.Style{StrokeColor: colorGrid, StrokeWidth: pt(0.8)}
}

// epochRange spans the epochs, widened to at least one epoch so the axis has extent.
func epochRange(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 1
	}
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// extremaAnnotations marks the points of minimum and maximum raw validation loss. The arrow
// targets and labels use the normalized value at that index.
func extremaAnnotations(xs, norm, raw []float64) []annotation {
	if len(raw) == 0 || len(norm) != len(raw) || len(xs) != len(raw) {
		return nil
	}
	lo, hi := trainlog.MinIndex(raw), trainlog.MaxIndex(raw)
	return []annotation{
		{X: xs[lo], Y: norm[lo], DX: 1, DY: 0.1, Label: fmt.Sprintf("Min Val Loss: %.2f", norm[lo]), Color: colorTraining},
		{X: xs[hi], Y: norm[hi], DX: 1, DY: 0.1, Label: fmt.Sprintf("Max Val Loss: %.2f", norm[hi]), Color: colorValidation},
	}
}

// Render writes the chart as a PNG declaring the figure DPI.
func Render(in Input, w io.Writer) error {
	var buf bytes.Buffer
	if err := BuildChart(in).Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	out, err := withPhysDPI(buf.Bytes(), DPI)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// SavePNG renders the chart to path, replacing any existing file.
func SavePNG(in Input, path string) error {
	defer logging.TimeTrack(time.Now(), "render "+path)
	var buf bytes.Buffer
	if err := Render(in, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

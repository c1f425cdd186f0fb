// Package lossviz runs the whole visualization for one training log:
// parse, normalize, title, render, save and optionally display.
package lossviz

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/tsotchke/PINN/src/display"
	"github.com/tsotchke/PINN/src/logging"
	"github.com/tsotchke/PINN/src/normalize"
	"github.com/tsotchke/PINN/src/render"
	"github.com/tsotchke/PINN/src/runname"
	"github.com/tsotchke/PINN/src/trainlog"
)

// Options controls where the chart goes.
type Options struct {
	OutDir string // directory for the PNG; "" means the working directory
	Show   bool   // open a window after saving, when a display is available
}

// Result describes a completed run.
type Result struct {
	Log         *trainlog.Log
	Name        runname.Name
	Output      string
	NormLoss    []float64
	NormValLoss []float64
	Shown       bool
}

// swapped in tests
var (
	displayAvailable = display.Available
	showChart        = display.Show
)

// Visualize renders the chart for the log at path. Failing to open the log or an unknown
// domain in its file name aborts the run before anything is written.
func Visualize(path string, opts Options) (*Result, error) {
	lg, err := trainlog.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if len(lg.Skipped) > 0 {
		logging.Infof("%s: skipped %d of %d lines", path, len(lg.Skipped), lg.Len()+len(lg.Skipped))
	}

	res := &Result{
		Log:         lg,
		NormLoss:    normalize.LogNormalize(lg.Losses),
		NormValLoss: normalize.LogNormalize(lg.ValLosses),
	}

	res.Name, err = runname.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("chart title: %w", err)
	}

	res.Output = filepath.Join(opts.OutDir, res.Name.OutputFile())
	in := render.Input{
		Title:      res.Name.Title(),
		Epochs:     lg.Epochs,
		Loss:       res.NormLoss,
		ValLoss:    res.NormValLoss,
		RawValLoss: lg.ValLosses,
	}
	if err := render.SavePNG(in, res.Output); err != nil {
		return nil, err
	}
	logging.Infof("saved %s (%d epochs)", res.Output, lg.Len())

	if !opts.Show {
		return res, nil
	}
	if !displayAvailable() {
		logging.Infof("no display available; not showing chart")
		return res, nil
	}
	if err := show(res.Output, res.Name.Title()); err != nil {
		return nil, err
	}
	res.Shown = true
	return res, nil
}

func show(path, title string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open chart for display: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode chart for display: %w", err)
	}
	showChart(title, img)
	return nil
}

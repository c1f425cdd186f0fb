// lossviz renders the log-normalized training/validation loss chart for a PINN training log.
//
// Usage:
//
//	lossviz [--log-level=info] [--show=true] [log_<domain>[_<run>].txt]
//
// The chart is written to log_normalized_training_validation_loss_<stem>.png in the
// working directory and, when a display is available, shown in a window.
package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tsotchke/PINN/src/logging"
	"github.com/tsotchke/PINN/src/lossviz"
	"github.com/tsotchke/PINN/src/runname"
	"github.com/tsotchke/PINN/src/trainlog"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	show := flag.Bool("show", true, "Open the chart in a window after saving (skipped without a display)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [log file]\n\nDefault log file: %s\n\nFlags:\n", os.Args[0], trainlog.DefaultLogFile)
		flag.PrintDefaults()
	}
	flag.Parse()

	if !logging.ValidLevel(*logLevel) {
		fmt.Fprintf(os.Stderr, "invalid --log-level %q\n", *logLevel)
		os.Exit(2)
	}
	logging.SetLogLevel(*logLevel)

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := trainlog.DefaultLogFile
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	if _, err := lossviz.Visualize(path, lossviz.Options{Show: *show}); err != nil {
		if errors.Is(err, runname.ErrUnknownDomain) {
			fmt.Fprintf(os.Stderr, "error: %v\nlog files must be named log_<domain>[_<run>].txt\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

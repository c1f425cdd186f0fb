package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tsotchke/PINN/src/logging"
	"github.com/tsotchke/PINN/src/runname"
	"github.com/tsotchke/PINN/src/trainlog"
)

func main() {
	logLevel := flag.String("log-level", "error", "Log level for per-line parse diagnostics (debug|info|warn|error)")
	flag.Parse()
	logging.SetLogLevel(*logLevel)

	files := flag.Args()
	if len(files) == 0 {
		files = []string{trainlog.DefaultLogFile}
	}
	failed := false
	for _, f := range files {
		if err := summarize(os.Stdout, f); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// summarize prints one line per log: domain, run, record counts and validation extremes.
func summarize(w io.Writer, path string) error {
	lg, err := trainlog.ParseFile(path)
	if err != nil {
		return err
	}
	label, run := "(unknown)", ""
	if n, err := runname.Parse(path); err == nil {
		label, run = n.Label, n.Run
	}
	if run == "" {
		run = "-"
	}
	fmt.Fprintf(w, "%s: domain=%s run=%s records=%d skipped=%d", path, label, run, lg.Len(), len(lg.Skipped))
	if lo, hi := lg.MinValLossIndex(), lg.MaxValLossIndex(); lo >= 0 {
		fmt.Fprintf(w, " best_val=%.5f@epoch%d worst_val=%.5f@epoch%d last_loss=%.5f",
			lg.ValLosses[lo], lg.Epochs[lo], lg.ValLosses[hi], lg.Epochs[hi], lg.Losses[lg.Len()-1])
	}
	fmt.Fprintln(w)
	return nil
}

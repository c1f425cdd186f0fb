// Package runname derives chart titles and output file names from training log file names
// such as log_navier_stokes_3.txt.
package runname

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// ErrUnknownDomain is returned when a log file name does not map to a known PDE domain.
var ErrUnknownDomain = errors.New("unknown loss function domain")

var labels = map[string]string{
	"schrodinger":   "Schrödinger",
	"navier_stokes": "Navier-Stokes",
	"heat":          "Heat",
	"wave":          "Wave",
	"maxwell":       "Maxwell",
}

var runSuffixRe = regexp.MustCompile(`_([0-9]+)$`)

const (
	logPrefix    = "log_"
	outputPrefix = "log_normalized_training_validation_loss_"
)

// Name is the decoded identity of a log file.
type Name struct {
	Stem   string // file name without "log_" prefix and extension, e.g. "heat_3"
	Domain string // lookup key, e.g. "heat"
	Label  string // display label, e.g. "Heat"
	Run    string // run number digits, empty for the first run
}

// Parse decodes the base name of path. It fails with ErrUnknownDomain when the domain key
// is not in the label table.
func Parse(path string) (Name, error) {
	base := filepath.Base(path)
	stem := strings.TrimPrefix(base, logPrefix)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	n := Name{Stem: stem, Domain: stem}
	if m := runSuffixRe.FindStringSubmatchIndex(stem); m != nil {
		n.Domain = stem[:m[0]]
		n.Run = stem[m[2]:m[3]]
	}
	label, ok := labels[n.Domain]
	if !ok {
		return n, fmt.Errorf("%w %q in %s (known: %s)", ErrUnknownDomain, n.Domain, base, strings.Join(Domains(), ", "))
	}
	n.Label = label
	return n, nil
}

// Title is the chart title; the run number is appended to tell runs of one domain apart.
func (n Name) Title() string {
	t := n.Label + " Log-Normalized Training and Validation Loss over Epochs"
	if n.Run != "" {
		t += " " + n.Run
	}
	return t
}

// OutputFile is the PNG file name the chart for this log is saved under.
func (n Name) OutputFile() string { return outputPrefix + n.Stem + ".png" }

// Domains returns the known domain keys, sorted.
func Domains() []string {
	out := make([]string, 0, len(labels))
	for k := range labels {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Label returns the display label for a domain key.
func Label(domain string) (string, bool) {
	l, ok := labels[domain]
	return l, ok
}

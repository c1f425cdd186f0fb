// Package trainlog reads the per-epoch loss logs written by the PINN trainer.
//
// A log holds one record per line:
//
//	Epoch 12: Loss:  0.01234, Validation Loss: 0.02345
//
// Parsing is best-effort: lines that do not have this shape, or whose numbers fail to
// convert, are reported and skipped. Only failing to open or read the file is fatal.
package trainlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tsotchke/PINN/src/logging"
)

// Number groups use the writer's digit/dot alphabet; "1.2.3" matches the shape and is
// rejected later by the numeric conversion.
var lineRe = regexp.MustCompile(`^Epoch (\d+): Loss:\s*([\d.]+), Validation Loss:\s*([\d.]+)\s*$`)

// DefaultLogFile is the log read when no path is given.
const DefaultLogFile = "log_schrodinger.txt"

// maxLineBytes caps a single log line; longer lines abort the scan.
const maxLineBytes = 1 << 20

// Record is one parsed log line.
type Record struct {
	Epoch   int
	Loss    float64
	ValLoss float64
}

// SkippedLine describes an input line that was not turned into a record.
type SkippedLine struct {
	Number int    // 1-based line number
	Text   string // trimmed line content
	Reason string
}

// Log holds the parsed series. Epochs, Losses and ValLosses are index-aligned and kept in
// input order; duplicate or out-of-order epochs are retained as-is.
type Log struct {
	Path      string
	Epochs    []int
	Losses    []float64
	ValLosses []float64
	Skipped   []SkippedLine
}

// ParseFile opens path and parses it. The file is closed on every return path.
func ParseFile(path string) (*Log, error) {
	defer logging.TimeTrack(time.Now(), "parse "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open training log: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads log lines from r. name is used for diagnostics and stored as Log.Path.
func Parse(r io.Reader, name string) (*Log, error) {
	lg := &Log{
		Path:      name,
		Epochs:    []int{},
		Losses:    []float64{},
		ValLosses: []float64{},
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		rec, err := parseLine(scanner.Text())
		if err != nil {
			lg.skip(lineNo, text, err)
			continue
		}
		lg.Epochs = append(lg.Epochs, rec.Epoch)
		lg.Losses = append(lg.Losses, rec.Loss)
		lg.ValLosses = append(lg.ValLosses, rec.ValLoss)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read training log %s (line %d): %w", name, lineNo+1, err)
	}
	logging.Debugf("%s: %d records, %d skipped lines", name, lg.Len(), len(lg.Skipped))
	return lg, nil
}

// errFormat marks a line whose shape does not match the log format.
var errFormat = errors.New("format not recognized")

func parseLine(line string) (Record, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Record{}, errFormat
	}
	epoch, err := strconv.Atoi(m[1])
	if err != nil {
		return Record{}, fmt.Errorf("epoch: %w", err)
	}
	loss, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("loss: %w", err)
	}
	val, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("validation loss: %w", err)
	}
	return Record{Epoch: epoch, Loss: loss, ValLoss: val}, nil
}

func (l *Log) skip(n int, text string, err error) {
	l.Skipped = append(l.Skipped, SkippedLine{Number: n, Text: text, Reason: err.Error()})
	if errors.Is(err, errFormat) {
		logging.Warnf("%s:%d: line format not recognized: %s", l.Path, n, text)
		return
	}
	logging.Warnf("%s:%d: error processing line: %s: %v", l.Path, n, text, err)
}

// Len returns the number of parsed records.
func (l *Log) Len() int { return len(l.Epochs) }

// Records returns the parsed series as records, in input order.
func (l *Log) Records() []Record {
	out := make([]Record, l.Len())
	for i := range out {
		out[i] = Record{Epoch: l.Epochs[i], Loss: l.Losses[i], ValLoss: l.ValLosses[i]}
	}
	return out
}

// MinValLossIndex returns the first index of the smallest raw validation loss, or -1.
func (l *Log) MinValLossIndex() int { return MinIndex(l.ValLosses) }

// MaxValLossIndex returns the first index of the largest raw validation loss, or -1.
func (l *Log) MaxValLossIndex() int { return MaxIndex(l.ValLosses) }

// MinIndex returns the first index of the smallest value in vals, or -1 when empty.
func MinIndex(vals []float64) int { return extremeIndex(vals, func(a, b float64) bool { return a < b }) }

// MaxIndex returns the first index of the largest value in vals, or -1 when empty.
func MaxIndex(vals []float64) int { return extremeIndex(vals, func(a, b float64) bool { return a > b }) }

func extremeIndex(vals []float64, better func(a, b float64) bool) int {
	if len(vals) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(vals); i++ {
		if better(vals[i], vals[best]) {
			best = i
		}
	}
	return best
}

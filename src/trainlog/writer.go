package trainlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FormatRecord renders rec in the trainer's log line format (no trailing newline).
func FormatRecord(rec Record) string {
	return fmt.Sprintf("Epoch %d: Loss:  %.5f, Validation Loss: %.5f", rec.Epoch, rec.Loss, rec.ValLoss)
}

// AppendRecord appends one formatted line to the log at path, creating it if needed.
func AppendRecord(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open training log for append: %w", err)
	}
	if _, err := fmt.Fprintln(f, FormatRecord(rec)); err != nil {
		f.Close()
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return f.Close()
}

// NextLogPath returns the first unused log file name for a domain in dir:
// log_<domain>.txt, then log_<domain>_1.txt, log_<domain>_2.txt, ...
func NextLogPath(dir, domain string) string {
	p := filepath.Join(dir, fmt.Sprintf("log_%s.txt", domain))
	for run := 1; exists(p); run++ {
		p = filepath.Join(dir, fmt.Sprintf("log_%s_%d.txt", domain, run))
	}
	return p
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return !errors.Is(err, fs.ErrNotExist)
}

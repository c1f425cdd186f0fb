package trainlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord_MatchesTrainerFormat(t *testing.T) {
	got := FormatRecord(Record{Epoch: 12, Loss: 0.0123456, ValLoss: 1.5})
	assert.Equal(t, "Epoch 12: Loss:  0.01235, Validation Loss: 1.50000", got)
}

func TestAppendRecord_WritesParsableLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "log_heat.txt")
	require.NoError(t, AppendRecord(p, Record{Epoch: 0, Loss: 2, ValLoss: 3}))
	require.NoError(t, AppendRecord(p, Record{Epoch: 1, Loss: 1, ValLoss: 1.5}))

	lg, err := ParseFile(p)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, lg.Epochs)
	assert.Equal(t, []float64{3, 1.5}, lg.ValLosses)
	assert.Empty(t, lg.Skipped)
}

func TestNextLogPath_PicksFirstFreeRun(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "log_wave.txt"), NextLogPath(dir, "wave"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "log_wave.txt"), nil, 0o644))
	assert.Equal(t, filepath.Join(dir, "log_wave_1.txt"), NextLogPath(dir, "wave"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "log_wave_1.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log_wave_2.txt"), nil, 0o644))
	assert.Equal(t, filepath.Join(dir, "log_wave_3.txt"), NextLogPath(dir, "wave"))
}

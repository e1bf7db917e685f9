package main

import (
	"bytes"
	"context"
	"go/build"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voltsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts := loadOptions([]string{})

	assert.Equal(t, options{}, opts)
}

func TestLoadOptionsLayers(t *testing.T) {
	t.Setenv("VOLTSIM_CYCLES", "7")
	t.Setenv("VOLTSIM_REALTIME", "true")

	opts := loadOptions([]string{})
	assert.Equal(t, 7, opts.cycles)
	assert.True(t, opts.realtime)

	// The command line wins over the environment.
	opts = loadOptions([]string{"--cycles=3", "--config=example.yaml", "--verbose=true"})
	assert.Equal(t, options{
		configPath: "example.yaml",
		cycles:     3,
		realtime:   true,
		verbose:    true,
	}, opts)
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, float32(5), cfg.Meter.Scale)
	assert.Equal(t, 500*time.Millisecond, cfg.Meter.Wait)
	assert.Len(t, cfg.Inputs, 3)
	assert.Equal(t, uint16(511), cfg.Inputs[4].Raw)
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := loadConfig("example.yaml")
	require.NoError(t, err)

	assert.Equal(t, "gpio", cfg.Meter.Display)
	assert.Equal(t, "Hello World!", cfg.Meter.Splash)
	assert.Equal(t, inputConfig{Raw: 0, Step: 31}, cfg.Inputs[3])
	assert.Equal(t, inputConfig{Raw: 1023, Step: -64}, cfg.Inputs[5])
}

func TestLoadConfigReplacesInputs(t *testing.T) {
	path := writeConfig(t, `
meter:
  scale: 12
  wait: 1s
  first: 0
  last: 1
inputs:
  0: {raw: 100}
  1: {raw: 200}
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float32(12), cfg.Meter.Scale)
	assert.Equal(t, time.Second, cfg.Meter.Wait)
	assert.Equal(t, uint8(0), cfg.Meter.FirstChannel)
	assert.Len(t, cfg.Inputs, 2)
	// Fields the file leaves out keep their defaults.
	assert.Equal(t, "gpio", cfg.Meter.Display)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"syntax", "meter: [", "parse config"},
		{"bad scale", "meter: {scale: 0}", "scale must be positive"},
		{"raw too big", "inputs: {3: {raw: 2000}}", "raw 2000 above 1023"},
		{"channel", "inputs: {16: {raw: 1}}", "no such mux channel"},
		{"no inputs", "inputs: {}", "no inputs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestRigRun(t *testing.T) {
	r, err := newRig(defaultConfig(), false, discardLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.run(context.Background(), 2, &out))

	frames := strings.Split(out.String(), "cycle ")
	require.Len(t, frames, 3)
	assert.Contains(t, frames[1], "|3: 0.00 4: 2.50 |\n|5: 5.00         |\n")
	assert.True(t, strings.HasPrefix(frames[2], "2 t="))
	// Two refreshes hold the 500ms wait twice each, plus the bus strobes.
	assert.Greater(t, r.clock.Elapsed, 2*time.Second)
	assert.False(t, r.led.Level)
}

func TestRigLongRunKeepsNoHistory(t *testing.T) {
	r, err := newRig(defaultConfig(), false, discardLogger())
	require.NoError(t, err)

	require.NoError(t, r.run(context.Background(), 5000, io.Discard))

	assert.Empty(t, r.adc.Conversions)
	assert.Empty(t, r.clock.Sleeps)
	assert.Empty(t, r.screen.Writes)
	assert.Empty(t, r.led.History)
}

func TestRigAdvanceWraps(t *testing.T) {
	cfg := defaultConfig()
	cfg.Inputs = map[uint8]inputConfig{
		3: {Raw: 1000, Step: 50},
		4: {Raw: 10, Step: -20},
		5: {Raw: 7},
	}
	r, err := newRig(cfg, false, discardLogger())
	require.NoError(t, err)

	r.advance()

	assert.Equal(t, uint16(26), r.adc.Inputs[3])
	assert.Equal(t, uint16(1014), r.adc.Inputs[4])
	assert.Equal(t, uint16(7), r.adc.Inputs[5])
}

func TestRigStopsOnCancel(t *testing.T) {
	r, err := newRig(defaultConfig(), false, discardLogger())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, r.run(ctx, 0, &out))
	assert.Empty(t, out.String())
}

func TestRigBackpack(t *testing.T) {
	if testing.Short() {
		t.Skip("hd44780i2c reset takes over a second")
	}
	cfg := defaultConfig()
	cfg.Meter.Display = "i2c"
	r, err := newRig(cfg, false, discardLogger())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.run(context.Background(), 1, &out))

	assert.Contains(t, out.String(), "|3: 0.00 4: 2.50 |\n|5: 5.00         |\n")
}

// The firmware entry point only builds for targets that have a board file.
func TestFirmwareTargets(t *testing.T) {
	dir := filepath.Join("..", "voltmeter")
	tests := []struct {
		target string
		board  string
	}{
		{"avr", "board_avr.go"},
		{"rp2040", "board_rp2.go"},
		{"rp2350", "board_rp2.go"},
		{"esp32", ""},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			ctxt := build.Default
			ctxt.BuildTags = []string{"tinygo", tt.target}

			hasMain, err := ctxt.MatchFile(dir, "main.go")
			require.NoError(t, err)
			assert.Equal(t, tt.board != "", hasMain)
			if tt.board != "" {
				ok, err := ctxt.MatchFile(dir, tt.board)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

// Command voltsim runs the voltmeter firmware on the host against emulated
// ADC registers and an emulated HD44780 display, printing the display after
// every refresh.
//
// Usage:
//
//	go run ./voltsim --config=voltsim/example.yaml --cycles=10
//
// Options:
//
//	-c, --config    YAML rig file, built-in defaults when empty
//	-n, --cycles    cycles to run, 0 runs until interrupted
//	--realtime      hold the refresh waits in real time
//	--verbose       log every sample
//
// Each option can also be set in the environment, e.g. VOLTSIM_CYCLES=10.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	opts := loadOptions(os.Args[1:])

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		logger.Error("voltsim:config", slog.Any("reason", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := newRig(cfg, opts.realtime, logger)
	if err != nil {
		logger.Error("voltsim:setup", slog.Any("reason", err))
		os.Exit(1)
	}
	if err := r.run(ctx, opts.cycles, os.Stdout); err != nil {
		logger.Error("voltsim:run", slog.Any("reason", err))
		os.Exit(1)
	}
}

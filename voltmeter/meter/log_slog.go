//go:build !avr

package meter

import "log/slog"

// Logger is what the loop reports through.
type Logger = slog.Logger

func (m *Meter) logSample(r Reading) {
	if m.log == nil {
		return
	}
	m.log.Debug("meter:sample",
		slog.Int("channel", int(r.Channel)),
		slog.Uint64("raw", uint64(r.Raw)),
		slog.Float64("volts", float64(r.Volts)),
	)
}

func (m *Meter) logRunning() {
	if m.log == nil {
		return
	}
	m.log.Info("meter:running",
		slog.Int("first", int(m.cfg.First)),
		slog.Int("last", int(m.cfg.Last)),
		slog.Duration("wait", m.cfg.Wait),
	)
}

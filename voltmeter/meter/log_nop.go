//go:build avr

package meter

// Logger has no output on AVR. log/slog pulls in fmt and reflect, which do
// not fit next to the firmware in 32KB of flash.
type Logger struct{}

func (m *Meter) logSample(Reading) {}

func (m *Meter) logRunning() {}

// Package meter is the measurement loop: sample each analog channel, scale
// it to volts, show it on the character display and blink the indicator.
package meter

import (
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/hal"
)

// Sampler reads one channel.
type Sampler interface {
	Read(ch adc.Channel) adc.Sample
}

// Display is the subset of the character display the loop writes to.
// lcd.Device and lcd.Backpack both implement it.
type Display interface {
	Clear()
	SetCursor(col, row uint8)
	PutChar(c byte)
	PutString(s string)
}

// Config holds the compile-time knobs of the loop.
type Config struct {
	// Scale is the voltage shown for a full-scale reading. It is a
	// calibration constant for whatever divider sits in front of the inputs.
	Scale  float32
	Offset float32
	// Wait is held twice per cycle: once with the indicator on, once off.
	Wait        time.Duration
	First, Last adc.Channel
	// Width and Precision shape each value, like dtostrf(v, 5, 2, buf).
	Width     int
	Precision int
}

// DefaultConfig returns the stock voltmeter settings.
func DefaultConfig() Config {
	return Config{
		Scale:     5,
		Wait:      500 * time.Millisecond,
		First:     3,
		Last:      5,
		Width:     5,
		Precision: 2,
	}
}

// Reading is one channel's result from a cycle.
type Reading struct {
	Channel adc.Channel
	Raw     adc.Sample
	Volts   float32
}

// Meter runs the measurement loop.
type Meter struct {
	cfg     Config
	adc     Sampler
	lcd     Display
	led     hal.Pin
	sleep   hal.Sleeper
	log     *Logger
	buf     []byte
	reading []Reading
}

// New returns a Meter. The display must already be initialised. A nil sleep
// falls back to time.Sleep and a nil logger turns logging off.
func New(cfg Config, sampler Sampler, display Display, led hal.Pin, sleep hal.Sleeper, logger *Logger) *Meter {
	if sleep == nil {
		sleep = time.Sleep
	}
	n := 0
	if cfg.Last >= cfg.First {
		n = int(cfg.Last-cfg.First) + 1
	}
	return &Meter{
		cfg:   cfg,
		adc:   sampler,
		lcd:   display,
		led:   led,
		sleep: sleep,
		log:   logger,
		// Preallocated so a refresh never touches the heap.
		buf:     make([]byte, 0, 16),
		reading: make([]Reading, 0, n),
	}
}

// Step runs one cycle and returns what it displayed. The slice is reused by
// the next call.
func (m *Meter) Step() []Reading {
	m.lcd.Clear()
	m.led.High()

	m.reading = m.reading[:0]
	for ch := m.cfg.First; ch <= m.cfg.Last; ch++ {
		raw := m.adc.Read(ch)
		v := Volts(raw, m.cfg.Scale, m.cfg.Offset)
		if ch == m.cfg.Last {
			m.lcd.SetCursor(0, 1)
		}
		m.buf = AppendReading(m.buf[:0], ch, v, m.cfg.Width, m.cfg.Precision)
		for _, c := range m.buf {
			m.lcd.PutChar(c)
		}
		m.reading = append(m.reading, Reading{Channel: ch, Raw: raw, Volts: v})
		m.logSample(m.reading[len(m.reading)-1])
		if ch == 0xFF { // ch++ would wrap
			break
		}
	}

	m.sleep(m.cfg.Wait)
	m.led.Low()
	m.sleep(m.cfg.Wait)
	return m.reading
}

// Run cycles forever.
func (m *Meter) Run() {
	m.logRunning()
	for {
		m.Step()
	}
}

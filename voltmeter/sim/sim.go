// Package sim emulates the voltmeter's hardware on the host: registers,
// output pins, a virtual clock, the ATmega ADC block and an HD44780
// character display. It backs both the unit tests and the voltsim program.
package sim

import "time"

// Register is an in-memory 8-bit register. With Trace set it keeps the
// history of every value written.
type Register struct {
	Value  uint8
	Trace  bool
	Writes []uint8
}

func (r *Register) Get() uint8 { return r.Value }

func (r *Register) Set(value uint8) {
	r.Value = value
	if r.Trace {
		r.Writes = append(r.Writes, value)
	}
}

func (r *Register) SetBits(value uint8) { r.Set(r.Value | value) }

func (r *Register) ClearBits(value uint8) { r.Set(r.Value &^ value) }

func (r *Register) HasBits(value uint8) bool { return r.Value&value != 0 }

// Pin is an output pin. With Trace set it keeps every level it was driven to.
type Pin struct {
	Level   bool
	Trace   bool
	History []bool
}

func (p *Pin) High() { p.Set(true) }

func (p *Pin) Low() { p.Set(false) }

func (p *Pin) Set(high bool) {
	p.Level = high
	if p.Trace {
		p.History = append(p.History, high)
	}
}

// Clock is a virtual time source. Sleep advances it without blocking.
type Clock struct {
	Elapsed time.Duration
	Sleeps  []time.Duration
	// OnSleep, if set, runs after the clock advances.
	OnSleep func(d time.Duration)
}

// Sleep advances the clock by d.
func (c *Clock) Sleep(d time.Duration) {
	c.Elapsed += d
	c.Sleeps = append(c.Sleeps, d)
	if c.OnSleep != nil {
		c.OnSleep(d)
	}
}

// Reset clears the recorded sleeps and elapsed time.
func (c *Clock) Reset() {
	c.Elapsed = 0
	c.Sleeps = c.Sleeps[:0]
}

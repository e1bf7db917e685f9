// Package adc reads the ATmega328P analog-to-digital converter one channel
// at a time.
package adc

import (
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/hal"
)

// Channel is an analog multiplexer input.
type Channel uint8

// Digit returns the ASCII character used to label the channel on the display.
// Channels above 9 run past '9' into the punctuation that follows it.
func (c Channel) Digit() byte { return byte(c) + '0' }

// Sample is a 10-bit conversion result.
type Sample uint16

// MaxSample is the full-scale conversion result.
const MaxSample Sample = 1023

// ADMUX and ADCSRA bits.
const (
	REFS0 = 1 << 6 // AVcc reference with external capacitor at AREF
	ADEN  = 1 << 7
	ADSC  = 1 << 6

	// Prescale64 puts an 8MHz clock at 125kHz, inside the 50-200kHz window
	// needed for full resolution.
	Prescale64 = 0x06

	muxMask = 0x0F
)

// SettleDelay is how long Read waits after starting a conversion. A
// conversion at 125kHz takes at most 25 ADC clocks (200µs).
const SettleDelay = time.Millisecond

// Registers is the register block of the converter.
type Registers struct {
	Mux     hal.Register8 // ADMUX
	Control hal.Register8 // ADCSRA
	Low     hal.Register8 // ADCL, must be read first
	High    hal.Register8 // ADCH
}

// Reader converts channels through a Registers block. It mutates the shared
// mux and control registers and is not safe for concurrent use.
type Reader struct {
	regs  Registers
	sleep hal.Sleeper
}

// New returns a Reader. A nil sleep falls back to hal.BusyWait.
func New(regs Registers, sleep hal.Sleeper) *Reader {
	if sleep == nil {
		sleep = hal.BusyWait
	}
	return &Reader{regs: regs, sleep: sleep}
}

// Enable powers the converter with the given prescaler bits and selects the
// REFS0 reference.
func (r *Reader) Enable(prescale uint8) {
	r.regs.Control.Set(ADEN | prescale&0x07)
	r.regs.Mux.SetBits(REFS0)
}

// Read selects ch, starts a conversion, waits SettleDelay and returns the
// result. Only the low four bits of ch reach the multiplexer; anything above
// is dropped silently.
func (r *Reader) Read(ch Channel) Sample {
	r.regs.Mux.ClearBits(muxMask)
	r.regs.Mux.SetBits(uint8(ch) & muxMask)
	r.regs.Control.SetBits(ADSC)
	r.sleep(SettleDelay)
	lo := r.regs.Low.Get()
	hi := r.regs.High.Get()
	return Sample(uint16(lo)|uint16(hi)<<8) & MaxSample
}

// DisableDigital turns off the digital input buffers of channels first
// through last in a DIDR0 style register.
func DisableDigital(didr hal.Register8, first, last Channel) {
	didr.Set(Mask(first, last))
}

// Mask returns the bit mask covering channels first through last. Channels
// above 7 have no digital buffer bit and are ignored.
func Mask(first, last Channel) uint8 {
	var m uint8
	for ch := first; ch <= last && ch < 8; ch++ {
		m |= 1 << ch
	}
	return m
}

// Package hal is the thin hardware access layer the voltmeter firmware is
// written against.
//
// The interfaces are shaped so that TinyGo's own types satisfy them without
// wrappers:
//   - *volatile.Register8 (device/avr) is a Register8
//   - machine.Pin is a Pin
//
// Host builds and tests plug in the emulated hardware from package sim.
package hal

import "time"

// Register8 is a memory-mapped 8-bit peripheral register.
type Register8 interface {
	Get() uint8
	Set(value uint8)
	SetBits(value uint8)
	ClearBits(value uint8)
	HasBits(value uint8) bool
}

// Pin is a digital output.
type Pin interface {
	High()
	Low()
}

// Sleeper blocks the caller for d. The firmware has a single execution
// context, so every wait is a plain blocking call.
type Sleeper func(d time.Duration)

// RegisterPin drives a single bit of an output port register.
type RegisterPin struct {
	Port Register8
	Bit  uint8
}

// OutputPin marks bit as an output in the data-direction register ddr and
// returns the pin driving that bit of port.
func OutputPin(port, ddr Register8, bit uint8) RegisterPin {
	ddr.SetBits(1 << bit)
	return RegisterPin{Port: port, Bit: bit}
}

// High sets the pin's port bit.
func (p RegisterPin) High() { p.Port.SetBits(1 << p.Bit) }

// Low clears the pin's port bit.
func (p RegisterPin) Low() { p.Port.ClearBits(1 << p.Bit) }

// Set drives the pin high or low.
func (p RegisterPin) Set(high bool) {
	if high {
		p.High()
		return
	}
	p.Low()
}

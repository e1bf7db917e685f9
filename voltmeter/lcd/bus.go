package lcd

import "github.com/harveysanders/voltmeter/voltmeter/hal"

// Bus is the 4-bit parallel interface of the controller: four data lines and
// the register-select and enable control lines. The R/W line is tied low.
type Bus interface {
	// WriteNibble drives D4..D7 from the high nibble of n.
	WriteNibble(n uint8)
	SetRS(data bool)
	SetEnable(high bool)
}

// PortBus wires the display to whole port registers: the data nibble sits on
// the upper four bits of Data, and RS and EN are bits of Control.
type PortBus struct {
	Data    hal.Register8
	Control hal.Register8
	RS      uint8
	EN      uint8
}

// NewPortBus marks the used port bits as outputs and returns the bus. dataDir
// and controlDir are the data-direction registers of the two ports.
func NewPortBus(data, dataDir, control, controlDir hal.Register8, rs, en uint8) *PortBus {
	dataDir.SetBits(0xF0)
	controlDir.SetBits(1<<rs | 1<<en)
	control.ClearBits(1<<rs | 1<<en)
	return &PortBus{Data: data, Control: control, RS: rs, EN: en}
}

// WriteNibble sets the upper bits that are high in n, then clears the ones
// that are low. The lower half of the port is left alone.
func (b *PortBus) WriteNibble(n uint8) {
	b.Data.SetBits(n & 0xF0)
	b.Data.ClearBits(^(n | 0x0F))
}

func (b *PortBus) SetRS(data bool) { setBit(b.Control, b.RS, data) }

func (b *PortBus) SetEnable(high bool) { setBit(b.Control, b.EN, high) }

func setBit(r hal.Register8, bit uint8, v bool) {
	if v {
		r.SetBits(1 << bit)
	} else {
		r.ClearBits(1 << bit)
	}
}

// PinBus wires the display to individual output pins.
type PinBus struct {
	D  [4]hal.Pin // D4..D7
	RS hal.Pin
	EN hal.Pin
}

func (b *PinBus) WriteNibble(n uint8) {
	for i, p := range b.D {
		setPin(p, n&(0x10<<i) != 0)
	}
}

func (b *PinBus) SetRS(data bool) { setPin(b.RS, data) }

func (b *PinBus) SetEnable(high bool) { setPin(b.EN, high) }

func setPin(p hal.Pin, v bool) {
	if v {
		p.High()
	} else {
		p.Low()
	}
}

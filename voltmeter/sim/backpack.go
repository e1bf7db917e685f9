package sim

import "errors"

// PCF8574 backpack pin assignment used by common HD44780 I2C modules.
const (
	bpRS        = 0x01
	bpEnable    = 0x04
	bpBacklight = 0x08
)

// ErrNack is returned for transfers to an address nobody answers on.
var ErrNack = errors.New("i2c: no acknowledge")

// Backpack emulates a PCF8574 I/O expander wired to an HD44780. It
// implements the tinygo.org/x/drivers I2C bus interface.
type Backpack struct {
	Addr      uint16
	LCD       *LCD
	Backlight bool
	// Transfers counts successful writes.
	Transfers int
}

// NewBackpack returns a backpack answering on addr with a fresh display.
func NewBackpack(addr uint16) *Backpack {
	return &Backpack{Addr: addr, LCD: NewLCD()}
}

// Tx applies every written byte to the expander outputs in order.
func (b *Backpack) Tx(addr uint16, w, r []byte) error {
	if addr != b.Addr {
		return ErrNack
	}
	for _, v := range w {
		b.LCD.SetRS(v&bpRS != 0)
		b.LCD.WriteNibble(v)
		b.LCD.SetEnable(v&bpEnable != 0)
		b.Backlight = v&bpBacklight != 0
	}
	for i := range r {
		r[i] = 0
	}
	b.Transfers++
	return nil
}

package lcd

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// BackpackAddrs are the usual PCF8574 and PCF8574A addresses of I2C LCD
// modules, in the order they are probed.
var BackpackAddrs = []uint8{0x27, 0x3F}

// Backpack is a 16x2 display behind a PCF8574 I2C expander. It offers the
// same calls as Device so the meter can drive either.
type Backpack struct {
	dev hd44780i2c.Device
	buf [1]byte
}

// NewBackpack returns the display at addr on an already configured bus.
func NewBackpack(bus drivers.I2C, addr uint8) *Backpack {
	return &Backpack{dev: hd44780i2c.New(bus, addr)}
}

// ProbeBackpack returns the display on the first of BackpackAddrs that
// acknowledges a write.
func ProbeBackpack(bus drivers.I2C) (*Backpack, error) {
	for _, a := range BackpackAddrs {
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		return NewBackpack(bus, a), nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}

// Init resets and configures the display. The driver's own reset sequence
// takes a little over a second.
func (b *Backpack) Init() error {
	err := b.dev.Configure(hd44780i2c.Config{
		Width:  16,
		Height: 2,
	})
	if err != nil {
		return errors.New("configure lcd:" + err.Error())
	}
	return nil
}

func (b *Backpack) Clear() { b.dev.ClearDisplay() }

func (b *Backpack) SetCursor(col, row uint8) { b.dev.SetCursor(col, row) }

func (b *Backpack) PutChar(c byte) {
	b.buf[0] = c
	b.dev.Print(b.buf[:])
}

// PutString prints s up to the first NUL byte. The underlying driver wraps
// to the next row at the display width and treats '\n' as a line break.
func (b *Backpack) PutString(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		b.PutChar(s[i])
	}
}

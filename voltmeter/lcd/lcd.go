// Package lcd drives a Hitachi HD44780 compatible character display over a
// 4-bit parallel bus.
//
// Timing is open loop: the busy flag is never read, every enable edge is
// followed by a fixed StrobeDelay instead. A display that is missing or
// miswired simply shows nothing.
//
// Datasheet: https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package lcd

import (
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/hal"
)

// StrobeDelay is held after each edge of the enable pulse. It is far longer
// than the controller's slowest instruction (1.52ms for clear/home spread
// over two nibbles).
const StrobeDelay = time.Millisecond

// Power-on reset waits, in order.
const (
	PowerOnDelay = 15 * time.Millisecond
	resetDelay1  = 5 * time.Millisecond
	resetDelay2  = time.Millisecond
	resetDelay3  = 5 * time.Millisecond
)

// Device is a 16x2 display on a 4-bit bus.
type Device struct {
	bus   Bus
	sleep hal.Sleeper
	rows  uint8
}

// New returns a Device on bus. Nothing is sent until Init. A nil sleep
// falls back to hal.BusyWait.
func New(bus Bus, sleep hal.Sleeper) *Device {
	if sleep == nil {
		sleep = hal.BusyWait
	}
	return &Device{bus: bus, sleep: sleep, rows: 2}
}

// Init runs the power-on reset by instruction: three 8-bit function sets,
// the switch to 4-bit mode, two-line mode, display on with cursor and blink
// off, then clear. It must be called once before anything else.
func (d *Device) Init() {
	d.bus.SetRS(false)
	d.bus.SetEnable(false)
	d.sleep(PowerOnDelay)

	d.sendNibble(FUNCTION_SET | DATA_LENGTH_8BIT)
	d.sleep(resetDelay1)
	d.sendNibble(FUNCTION_SET | DATA_LENGTH_8BIT)
	d.sleep(resetDelay2)
	d.sendNibble(FUNCTION_SET | DATA_LENGTH_8BIT)
	d.sleep(resetDelay3)
	d.sendNibble(FUNCTION_SET)

	d.SendByte(false, FUNCTION_SET|TWO_LINE)
	d.SendByte(false, DISPLAY_CONTROL|DISPLAY_ON)
	d.Clear()
	d.sleep(StrobeDelay)
}

// Clear blanks the display and homes the cursor.
func (d *Device) Clear() {
	d.SendByte(false, CLEAR_DISPLAY)
}

// SetCursor moves the cursor to column col of row. Rows past the last one
// wrap to the first.
func (d *Device) SetCursor(col, row uint8) {
	if row >= d.rows {
		row = 0
	}
	d.SendByte(false, DDRAM_SET|(col+rowOffsets[row]))
}

// PutChar writes c at the cursor.
func (d *Device) PutChar(c byte) {
	d.SendByte(true, c)
}

// PutString writes s one character at a time, stopping at a NUL byte. The
// driver does not wrap or truncate; the controller's address counter decides
// where characters past the end of a row land.
func (d *Device) PutString(s string) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		d.PutChar(s[i])
	}
}

// Write implements io.Writer on top of PutChar. It never fails.
func (d *Device) Write(p []byte) (int, error) {
	for _, c := range p {
		d.PutChar(c)
	}
	return len(p), nil
}

// SendByte writes b as data when isData is set, as an instruction otherwise.
// The high nibble goes first.
func (d *Device) SendByte(isData bool, b byte) {
	d.bus.SetRS(isData)
	d.sendNibble(b)
	d.sendNibble(b << 4)
}

// sendNibble latches the high nibble of n.
func (d *Device) sendNibble(n uint8) {
	d.bus.WriteNibble(n)
	d.bus.SetEnable(true)
	d.sleep(StrobeDelay)
	d.bus.SetEnable(false)
	d.sleep(StrobeDelay)
}

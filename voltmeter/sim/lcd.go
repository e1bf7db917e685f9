package sim

import "strings"

// HD44780 instruction set, decoded by the emulator.
const (
	cmdClear          = 0x01
	cmdHome           = 0x02
	cmdEntryMode      = 0x04
	cmdDisplayControl = 0x08
	cmdShift          = 0x10
	cmdFunctionSet    = 0x20
	cmdSetCGRAM       = 0x40
	cmdSetDDRAM       = 0x80

	entryIncrement = 0x02
	displayOn      = 0x04
	cursorOn       = 0x02
	blinkOn        = 0x01
	function8Bit   = 0x10
	functionTwoRow = 0x08

	rowStride = 0x40
	rowLength = 0x28
)

// Write is one byte latched by the emulated controller.
type Write struct {
	Data  bool
	Value byte
}

// LCD emulates an HD44780 controller wired in 4-bit mode. It implements the
// parallel bus the lcd package drives: data nibbles are latched on the
// falling edge of the enable line.
//
// The controller powers up in 8-bit mode, so until a function set with DL=0
// arrives every latched nibble is a full instruction.
type LCD struct {
	Columns int

	ddram     [2 * rowStride]byte
	addr      uint8
	increment bool
	cgram     bool

	fourBit bool
	twoRow  bool
	on      bool
	cursor  bool
	blink   bool

	rs      bool
	en      bool
	lines   uint8
	pending uint8
	half    bool

	// Clears counts executed clear-display instructions.
	Clears int
	// Trace enables recording of every latched byte in Writes.
	Trace  bool
	Writes []Write
}

// NewLCD returns a powered-up 16 column display.
func NewLCD() *LCD {
	l := &LCD{Columns: 16, increment: true}
	l.clear()
	return l
}

// WriteNibble drives D4..D7 from the high nibble of n.
func (l *LCD) WriteNibble(n uint8) { l.lines = n & 0xF0 }

// SetRS drives the register-select line.
func (l *LCD) SetRS(data bool) { l.rs = data }

// SetEnable drives the enable strobe.
func (l *LCD) SetEnable(high bool) {
	falling := l.en && !high
	l.en = high
	if falling {
		l.latch()
	}
}

func (l *LCD) latch() {
	if !l.fourBit {
		l.execute(l.rs, l.lines)
		return
	}
	if !l.half {
		l.pending = l.lines
		l.half = true
		return
	}
	l.half = false
	l.execute(l.rs, l.pending|l.lines>>4)
}

func (l *LCD) execute(data bool, b byte) {
	if l.Trace {
		l.Writes = append(l.Writes, Write{Data: data, Value: b})
	}
	if data {
		l.put(b)
		return
	}
	switch {
	case b&cmdSetDDRAM != 0:
		l.addr = b &^ cmdSetDDRAM
		l.cgram = false
	case b&cmdSetCGRAM != 0:
		l.cgram = true
	case b&cmdFunctionSet != 0:
		l.fourBit = b&function8Bit == 0
		l.twoRow = b&functionTwoRow != 0
		l.half = false
	case b&cmdShift != 0:
	case b&cmdDisplayControl != 0:
		l.on = b&displayOn != 0
		l.cursor = b&cursorOn != 0
		l.blink = b&blinkOn != 0
	case b&cmdEntryMode != 0:
		l.increment = b&entryIncrement != 0
	case b&cmdHome != 0:
		l.addr = 0
	case b&cmdClear != 0:
		l.clear()
		l.Clears++
	}
}

func (l *LCD) clear() {
	for i := range l.ddram {
		l.ddram[i] = ' '
	}
	l.addr = 0
	l.increment = true
	l.cgram = false
}

func (l *LCD) put(c byte) {
	if l.cgram {
		return
	}
	if int(l.addr) < len(l.ddram) {
		l.ddram[l.addr] = c
	}
	l.addr = l.step(l.addr)
}

// step moves the address counter the way a two-line controller does:
// row one ends at 0x27 and continues at 0x40.
func (l *LCD) step(a uint8) uint8 {
	if l.increment {
		switch a {
		case rowLength - 1:
			return rowStride
		case rowStride + rowLength - 1:
			return 0
		}
		return a + 1
	}
	switch a {
	case 0:
		return rowStride + rowLength - 1
	case rowStride:
		return rowLength - 1
	}
	return a - 1
}

// Row returns the visible text of row 0 or 1.
func (l *LCD) Row(i int) string {
	base := i * rowStride
	return string(l.ddram[base : base+l.Columns])
}

// Address reports the current DDRAM address counter.
func (l *LCD) Address() uint8 { return l.addr }

// FourBit reports whether the controller has switched to 4-bit mode.
func (l *LCD) FourBit() bool { return l.fourBit }

// TwoRow reports whether two-line mode is configured.
func (l *LCD) TwoRow() bool { return l.twoRow }

// DisplayOn reports the display, cursor and blink flags.
func (l *LCD) DisplayOn() (on, cursor, blink bool) { return l.on, l.cursor, l.blink }

// Render draws the visible rows inside a frame. A display that is switched
// off renders blank.
func (l *LCD) Render() string {
	var b strings.Builder
	border := "+" + strings.Repeat("-", l.Columns) + "+\n"
	b.WriteString(border)
	for i := 0; i < 2; i++ {
		b.WriteByte('|')
		if l.on {
			b.WriteString(l.Row(i))
		} else {
			b.WriteString(strings.Repeat(" ", l.Columns))
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

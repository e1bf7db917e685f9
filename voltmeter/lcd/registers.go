package lcd

// HD44780 instructions and their option bits.
const (
	CLEAR_DISPLAY   = 0x01
	CURSOR_HOME     = 0x02
	ENTRY_MODE      = 0x04
	DISPLAY_CONTROL = 0x08
	FUNCTION_SET    = 0x20
	CGRAM_SET       = 0x40
	DDRAM_SET       = 0x80

	// DISPLAY_CONTROL options
	DISPLAY_ON = 0x04
	CURSOR_ON  = 0x02
	BLINK_ON   = 0x01

	// FUNCTION_SET options
	DATA_LENGTH_8BIT = 0x10
	TWO_LINE         = 0x08
	FONT_5X10        = 0x04
)

// rowOffsets are the DDRAM addresses of the first column of each row.
var rowOffsets = [4]uint8{0x00, 0x40, 0x14, 0x54}

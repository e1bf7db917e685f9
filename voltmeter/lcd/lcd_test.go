package lcd_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/voltmeter/voltmeter/lcd"
	"github.com/harveysanders/voltmeter/voltmeter/sim"
)

func newDevice(t *testing.T) (*lcd.Device, *sim.LCD, *sim.Clock) {
	t.Helper()
	screen := sim.NewLCD()
	clock := &sim.Clock{}
	return lcd.New(screen, clock.Sleep), screen, clock
}

func TestInitSequence(t *testing.T) {
	dev, screen, clock := newDevice(t)
	screen.Trace = true

	dev.Init()

	want := []sim.Write{
		{Value: 0x30}, {Value: 0x30}, {Value: 0x30}, // 8-bit resets
		{Value: 0x20}, // 4-bit mode
		{Value: 0x28}, // two lines
		{Value: 0x0C}, // display on, cursor off, blink off
		{Value: 0x01}, // clear
	}
	assert.Equal(t, want, screen.Writes)
	assert.True(t, screen.FourBit())
	assert.True(t, screen.TwoRow())
	on, cursor, blink := screen.DisplayOn()
	assert.True(t, on)
	assert.False(t, cursor)
	assert.False(t, blink)
	assert.Equal(t, 1, screen.Clears)

	require.GreaterOrEqual(t, len(clock.Sleeps), 4)
	assert.Equal(t, lcd.PowerOnDelay, clock.Sleeps[0])
	assert.Equal(t, 5*time.Millisecond, clock.Sleeps[3])
	assert.Equal(t, 47*time.Millisecond, clock.Elapsed)
}

func TestSendByteStrobes(t *testing.T) {
	dev, screen, clock := newDevice(t)
	dev.Init()
	clock.Reset()
	screen.Trace = true

	dev.SendByte(true, 'A')

	assert.Equal(t, []sim.Write{{Data: true, Value: 'A'}}, screen.Writes)
	// Two nibbles, a delay after each enable edge.
	assert.Equal(t, []time.Duration{
		lcd.StrobeDelay, lcd.StrobeDelay, lcd.StrobeDelay, lcd.StrobeDelay,
	}, clock.Sleeps)
}

func TestPutString(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()

	dev.PutString("Hello World!")

	assert.Equal(t, "Hello World!    ", screen.Row(0))
	assert.Equal(t, "                ", screen.Row(1))
}

func TestPutStringStopsAtNul(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()

	dev.PutString("ab\x00cd")

	assert.Equal(t, "ab              ", screen.Row(0))
}

func TestSecondRow(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()
	screen.Trace = true

	dev.PutString("top")
	dev.SetCursor(0, 1)
	dev.PutChar('5')

	assert.Contains(t, screen.Writes, sim.Write{Value: 0xC0})
	assert.Equal(t, "top             ", screen.Row(0))
	assert.Equal(t, "5               ", screen.Row(1))
}

func TestSetCursorWrapsRow(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()

	dev.SetCursor(4, 7)
	dev.PutChar('x')

	assert.Equal(t, "    x           ", screen.Row(0))
}

func TestClearIsIdempotent(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()
	dev.PutString("junk")
	dev.SetCursor(3, 1)
	dev.PutString("more")

	dev.Clear()
	once := [2]string{screen.Row(0), screen.Row(1)}
	addr := screen.Address()

	dev.Clear()

	assert.Equal(t, once, [2]string{screen.Row(0), screen.Row(1)})
	assert.Equal(t, addr, screen.Address())
	assert.Equal(t, uint8(0), screen.Address())
}

func TestWrite(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()

	n, err := dev.Write([]byte("4: 2.50 "))

	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "4: 2.50         ", screen.Row(0))
}

func TestLongStringFollowsAddressCounter(t *testing.T) {
	dev, screen, _ := newDevice(t)
	dev.Init()

	// 40 characters fill DDRAM row one, the next one lands on row two.
	for i := 0; i < 40; i++ {
		dev.PutChar('.')
	}
	dev.PutChar('!')

	assert.Equal(t, "!               ", screen.Row(1))
}

package meter

import (
	"strconv"

	"github.com/chewxy/math32"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
)

// Volts scales a raw conversion onto the 0..scale range and adds the
// calibration offset. Results below zero read as zero.
func Volts(raw adc.Sample, scale, offset float32) float32 {
	v := float32(raw)*scale/float32(adc.MaxSample) + offset
	return math32.Max(0, v)
}

// AppendValue appends v with prec fraction digits, right aligned and space
// padded to at least width characters. Wider values are not truncated.
func AppendValue(dst []byte, v float32, width, prec int) []byte {
	var tmp [24]byte
	s := strconv.AppendFloat(tmp[:0], float64(v), 'f', prec, 32)
	for i := len(s); i < width; i++ {
		dst = append(dst, ' ')
	}
	return append(dst, s...)
}

// AppendReading appends the display text for one channel: its digit, a
// colon, the formatted value and a trailing space.
func AppendReading(dst []byte, ch adc.Channel, v float32, width, prec int) []byte {
	dst = append(dst, ch.Digit(), ':')
	dst = AppendValue(dst, v, width, prec)
	return append(dst, ' ')
}

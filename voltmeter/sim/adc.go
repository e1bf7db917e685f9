package sim

// ATmega ADC bits mirrored from the datasheet. They are duplicated here so
// the emulator does not depend on the driver it is used to check.
const (
	adcEnable = 1 << 7 // ADCSRA.ADEN
	adcStart  = 1 << 6 // ADCSRA.ADSC
	muxMask   = 0x0F
)

// ADC emulates the ATmega328P ADMUX/ADCSRA/ADCL/ADCH block. Writing ADSC
// while ADEN is set converts Inputs[ADMUX&0x0F] immediately and clears ADSC.
type ADC struct {
	// Inputs holds the 10-bit value presented on each mux input.
	Inputs [16]uint16

	Mux     Register
	Control ADCControl
	Low     Register
	High    Register

	// Conversions lists the mux input of every completed conversion while
	// Trace is set.
	Trace       bool
	Conversions []uint8
}

// NewADC returns an ADC with its control register wired back to it.
func NewADC() *ADC {
	a := &ADC{}
	a.Control.adc = a
	return a
}

func (a *ADC) convert() {
	ch := a.Mux.Value & muxMask
	v := a.Inputs[ch] & 0x3FF
	a.Low.Value = uint8(v)
	a.High.Value = uint8(v >> 8)
	if a.Trace {
		a.Conversions = append(a.Conversions, ch)
	}
}

// ADCControl is the ADCSRA register of an emulated ADC.
type ADCControl struct {
	Register
	adc *ADC
}

func (c *ADCControl) Set(value uint8) {
	c.Register.Set(value)
	if value&adcStart != 0 && value&adcEnable != 0 {
		c.adc.convert()
		c.Register.Value &^= adcStart
	}
}

func (c *ADCControl) SetBits(value uint8) { c.Set(c.Value | value) }

func (c *ADCControl) ClearBits(value uint8) { c.Set(c.Value &^ value) }

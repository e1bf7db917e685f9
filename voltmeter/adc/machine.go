//go:build rp2040 || rp2350

package adc

import "machine"

// MachineReader reads channels through TinyGo's machine.ADC. Channels 3, 4
// and 5 map to ADC0..ADC2 (GP26..GP28) so the display labels stay the same
// as on the AVR board.
type MachineReader struct {
	inputs [16]machine.ADC
	wired  [16]bool
}

// NewMachineReader initialises the ADC peripheral and maps channels first
// through last onto ADC0 onwards. It fails if the range needs more than
// MachineInputs pins.
func NewMachineReader(first, last Channel) (*MachineReader, error) {
	if err := CheckMachineSpan(first, last); err != nil {
		return nil, err
	}
	machine.InitADC()
	r := &MachineReader{}
	pins := [MachineInputs]machine.Pin{machine.ADC0, machine.ADC1, machine.ADC2}
	for i, pin := range pins[:last-first+1] {
		ch := (first + Channel(i)) & muxMask
		a := machine.ADC{Pin: pin}
		a.Configure(machine.ADCConfig{})
		r.inputs[ch] = a
		r.wired[ch] = true
	}
	return r, nil
}

// Read returns the 10-bit reading of ch. Unwired channels read 0.
func (r *MachineReader) Read(ch Channel) Sample {
	ch &= muxMask
	if !r.wired[ch] {
		return 0
	}
	// machine.ADC scales every result to 16 bits.
	return Sample(r.inputs[ch].Get() >> 6)
}

package adc

import (
	"errors"
	"strconv"
)

// MachineInputs is how many analog pins MachineReader maps: ADC0..ADC2.
const MachineInputs = 3

// CheckMachineSpan reports an error if first..last needs more inputs than
// MachineReader has pins for.
func CheckMachineSpan(first, last Channel) error {
	if last < first {
		return errors.New("first channel is after last channel")
	}
	if int(last-first) >= MachineInputs {
		return errors.New("channels " + strconv.Itoa(int(first)) + "-" + strconv.Itoa(int(last)) +
			" need more than " + strconv.Itoa(MachineInputs) + " analog pins")
	}
	return nil
}

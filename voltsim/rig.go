package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/config"
	"github.com/harveysanders/voltmeter/voltmeter/lcd"
	"github.com/harveysanders/voltmeter/voltmeter/meter"
	"github.com/harveysanders/voltmeter/voltmeter/sim"
)

// rig is the firmware wired to emulated hardware.
type rig struct {
	inputs map[uint8]inputConfig
	adc    *sim.ADC
	screen *sim.LCD
	led    *sim.Pin
	clock  *sim.Clock
	meter  *meter.Meter
	log    *slog.Logger
}

// newRig builds the board the same way the AVR firmware does. With realtime
// set, the meter's refresh waits also block for real.
func newRig(cfg simConfig, realtime bool, logger *slog.Logger) (*rig, error) {
	r := &rig{
		inputs: make(map[uint8]inputConfig, len(cfg.Inputs)),
		adc:    sim.NewADC(),
		led:    &sim.Pin{},
		clock:  &sim.Clock{},
		log:    logger,
	}
	for ch, in := range cfg.Inputs {
		r.inputs[ch] = in
	}
	r.apply()

	reader := adc.New(adc.Registers{
		Mux:     &r.adc.Mux,
		Control: &r.adc.Control,
		Low:     &r.adc.Low,
		High:    &r.adc.High,
	}, r.clock.Sleep)
	reader.Enable(adc.Prescale64)

	display, err := r.display(cfg.Meter.Display)
	if err != nil {
		return nil, err
	}
	display.PutString(cfg.Meter.Splash)

	wait := r.clock.Sleep
	if realtime {
		wait = func(d time.Duration) {
			r.clock.Sleep(d)
			time.Sleep(d)
		}
	}
	r.meter = meter.New(cfg.Meter.Meter(), reader, display, r.led, wait, logger)
	return r, nil
}

func (r *rig) display(kind string) (meter.Display, error) {
	if kind == config.DisplayI2C {
		bus := sim.NewBackpack(uint16(lcd.BackpackAddrs[0]))
		r.screen = bus.LCD
		bp, err := lcd.ProbeBackpack(bus)
		if err != nil {
			return nil, err
		}
		if err := bp.Init(); err != nil {
			return nil, err
		}
		return bp, nil
	}
	r.screen = sim.NewLCD()
	d := lcd.New(r.screen, r.clock.Sleep)
	d.Init()
	return d, nil
}

// apply presents the current input values to the ADC.
func (r *rig) apply() {
	for ch, in := range r.inputs {
		r.adc.Inputs[ch&0x0F] = in.Raw
	}
}

// advance moves every input by its step.
func (r *rig) advance() {
	const span = int(adc.MaxSample) + 1
	for ch, in := range r.inputs {
		in.Raw = uint16(((int(in.Raw)+in.Step)%span + span) % span)
		r.inputs[ch] = in
	}
	r.apply()
}

// run cycles the meter n times, or until ctx is done when n is 0, and draws
// the display after every cycle.
func (r *rig) run(ctx context.Context, n int, w io.Writer) error {
	for i := 1; n == 0 || i <= n; i++ {
		select {
		case <-ctx.Done():
			r.log.Info("voltsim:stopped", slog.Int("cycles", i-1))
			return nil
		default:
		}

		readings := r.meter.Step()
		r.clock.Sleeps = r.clock.Sleeps[:0]
		if _, err := fmt.Fprintf(w, "cycle %d t=%s\n%s", i, r.clock.Elapsed, r.screen.Render()); err != nil {
			return fmt.Errorf("draw display: %w", err)
		}
		for _, rd := range readings {
			r.log.Debug("voltsim:reading",
				slog.Int("channel", int(rd.Channel)),
				slog.Float64("volts", float64(rd.Volts)),
			)
		}
		r.advance()
	}
	return nil
}

//go:build tinygo && (avr || rp2040 || rp2350)

// Command voltmeter samples three analog inputs, scales them to volts and
// shows them on a 16x2 character LCD, blinking an indicator LED each cycle.
package main

import (
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/config"
	"github.com/harveysanders/voltmeter/voltmeter/hal"
	"github.com/harveysanders/voltmeter/voltmeter/meter"
)

// board is everything the measurement loop needs from the target.
type board struct {
	adc     meter.Sampler
	display meter.Display
	led     hal.Pin
	sleep   hal.Sleeper
	logger  *meter.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		printErrForever("load config: " + err.Error())
	}

	b, err := setupBoard(cfg)
	if err != nil {
		printErrForever("setup board: " + err.Error())
	}

	// Overwritten by the first refresh.
	b.display.PutString(cfg.Splash)

	m := meter.New(cfg.Meter(), b.adc, b.display, b.led, b.sleep, b.logger)
	m.Run()
}

// printErrForever prints msg to serial @ 1hz. It blocks forever so the
// message is still there once a serial monitor attaches.
func printErrForever(msg string) {
	for {
		println(msg)
		time.Sleep(time.Second)
	}
}

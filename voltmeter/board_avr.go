//go:build tinygo && avr

package main

import (
	"device/avr"
	"errors"
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/config"
	"github.com/harveysanders/voltmeter/voltmeter/hal"
	"github.com/harveysanders/voltmeter/voltmeter/lcd"
)

// ATmega328P wiring:
//
//	PB4..PB7  LCD D4..D7
//	PD5       LCD EN
//	PD6       LCD RS
//	PD7       indicator LED
//	ADC3..5   analog inputs
const (
	lcdEN  = 5
	lcdRS  = 6
	ledBit = 7
)

func setupBoard(cfg config.Config) (board, error) {
	if cfg.Display != config.DisplayGPIO {
		return board{}, errors.New("display " + cfg.Display + " not wired on this board")
	}

	avr.PORTD.Set(0)
	led := hal.OutputPin(avr.PORTD, avr.DDRD, ledBit)
	bus := lcd.NewPortBus(avr.PORTB, avr.DDRB, avr.PORTD, avr.DDRD, lcdRS, lcdEN)

	reader := adc.New(adc.Registers{
		Mux:     avr.ADMUX,
		Control: avr.ADCSRA,
		Low:     avr.ADCL,
		High:    avr.ADCH,
	}, time.Sleep)
	reader.Enable(adc.Prescale64)
	adc.DisableDigital(avr.DIDR0, adc.Channel(cfg.FirstChannel), adc.Channel(cfg.LastChannel))

	display := lcd.New(bus, time.Sleep)
	display.Init()

	// No logger. meter.Logger is empty on AVR so slog stays out of flash.
	return board{
		adc:     reader,
		display: display,
		led:     led,
		sleep:   time.Sleep,
	}, nil
}

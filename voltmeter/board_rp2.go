//go:build tinygo && (rp2040 || rp2350)

package main

import (
	"errors"
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/config"
	"github.com/harveysanders/voltmeter/voltmeter/hal"
	"github.com/harveysanders/voltmeter/voltmeter/lcd"
	"github.com/harveysanders/voltmeter/voltmeter/meter"
)

// Pico wiring. The analog inputs are ADC0..ADC2 (GP26..GP28).
var (
	ledPin  = machine.GP21
	lcdData = [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
	lcdRS   = machine.GP14
	lcdEN   = machine.GP15
	i2cSDA  = machine.GP4
	i2cSCL  = machine.GP5
)

func setupBoard(cfg config.Config) (board, error) {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	reader, err := adc.NewMachineReader(adc.Channel(cfg.FirstChannel), adc.Channel(cfg.LastChannel))
	if err != nil {
		return board{}, errors.New("configure ADC:" + err.Error())
	}

	display, err := setupDisplay(cfg.Display)
	if err != nil {
		return board{}, err
	}
	logger.Info("board:ready", slog.String("display", cfg.Display))

	return board{
		adc:     reader,
		display: display,
		led:     ledPin,
		sleep:   time.Sleep,
		logger:  logger,
	}, nil
}

func setupDisplay(kind string) (meter.Display, error) {
	if kind == config.DisplayI2C {
		err := machine.I2C0.Configure(machine.I2CConfig{
			SDA: i2cSDA,
			SCL: i2cSCL,
		})
		if err != nil {
			return nil, errors.New("configure I2C:" + err.Error())
		}
		bp, err := lcd.ProbeBackpack(machine.I2C0)
		if err != nil {
			return nil, err
		}
		if err := bp.Init(); err != nil {
			return nil, err
		}
		return bp, nil
	}

	var data [4]hal.Pin
	for i, p := range lcdData {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		data[i] = p
	}
	lcdRS.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcdEN.Configure(machine.PinConfig{Mode: machine.PinOutput})

	display := lcd.New(&lcd.PinBus{D: data, RS: lcdRS, EN: lcdEN}, hal.BusyWait)
	display.Init()
	return display, nil
}

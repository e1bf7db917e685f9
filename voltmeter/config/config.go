// Package config holds the voltmeter's compile-time settings.
//
// The defaults can be overridden when linking, for example:
//
//	tinygo flash -target=arduino \
//	  -ldflags="-X 'github.com/harveysanders/voltmeter/voltmeter/config.scale=12'" \
//	  ./voltmeter
package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/chewxy/math32"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/meter"
)

// CPUFrequency is the AVR board's system clock. The ADC prescaler is
// chosen for it.
const CPUFrequency = 8_000_000

// Display kinds.
const (
	DisplayGPIO = "gpio" // 4-bit parallel bus
	DisplayI2C  = "i2c"  // PCF8574 backpack
)

// Set via linker flags.
var (
	scale   = "5"
	offset  = "0"
	wait    = "500ms"
	first   = "3"
	last    = "5"
	display = DisplayGPIO
	splash  = "Hello World!"
)

// Config is the full firmware configuration.
type Config struct {
	Scale        float32       `yaml:"scale"`
	Offset       float32       `yaml:"offset"`
	Wait         time.Duration `yaml:"wait"`
	FirstChannel uint8         `yaml:"first"`
	LastChannel  uint8         `yaml:"last"`
	Display      string        `yaml:"display"`
	Splash       string        `yaml:"splash"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Scale:        5,
		Wait:         500 * time.Millisecond,
		FirstChannel: 3,
		LastChannel:  5,
		Display:      DisplayGPIO,
		Splash:       "Hello World!",
	}
}

// Load parses the link-time settings.
func Load() (Config, error) {
	var cfg Config
	s, err := strconv.ParseFloat(scale, 32)
	if err != nil {
		return cfg, errors.New("parse scale:" + err.Error())
	}
	o, err := strconv.ParseFloat(offset, 32)
	if err != nil {
		return cfg, errors.New("parse offset:" + err.Error())
	}
	w, err := time.ParseDuration(wait)
	if err != nil {
		return cfg, errors.New("parse wait:" + err.Error())
	}
	f, err := strconv.ParseUint(first, 10, 8)
	if err != nil {
		return cfg, errors.New("parse first channel:" + err.Error())
	}
	l, err := strconv.ParseUint(last, 10, 8)
	if err != nil {
		return cfg, errors.New("parse last channel:" + err.Error())
	}
	cfg = Config{
		Scale:        float32(s),
		Offset:       float32(o),
		Wait:         w,
		FirstChannel: uint8(f),
		LastChannel:  uint8(l),
		Display:      display,
		Splash:       splash,
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case !(c.Scale > 0) || math32.IsInf(c.Scale, 0):
		return errors.New("scale must be positive")
	case math32.IsNaN(c.Offset) || math32.IsInf(c.Offset, 0):
		return errors.New("offset must be finite")
	case c.Wait <= 0:
		return errors.New("wait must be positive")
	case c.FirstChannel > c.LastChannel:
		return errors.New("first channel is after last channel")
	case c.LastChannel > 15:
		return errors.New("channel out of range 0-15")
	case c.Display != DisplayGPIO && c.Display != DisplayI2C:
		return errors.New("unknown display " + strconv.Quote(c.Display))
	}
	return nil
}

// Meter returns the measurement loop settings. Values are always shown five
// characters wide with two decimals.
func (c Config) Meter() meter.Config {
	mc := meter.DefaultConfig()
	mc.Scale = c.Scale
	mc.Offset = c.Offset
	mc.Wait = c.Wait
	mc.First = adc.Channel(c.FirstChannel)
	mc.Last = adc.Channel(c.LastChannel)
	return mc
}

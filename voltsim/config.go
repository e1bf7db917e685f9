package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harveysanders/voltmeter/voltmeter/adc"
	"github.com/harveysanders/voltmeter/voltmeter/config"
)

// simConfig is the simulator's YAML file.
type simConfig struct {
	Meter  config.Config         `yaml:"meter"`
	Inputs map[uint8]inputConfig `yaml:"inputs"`
}

// inputConfig is the signal presented on one analog input. Raw moves by
// Step after every cycle and wraps around the 10-bit range.
type inputConfig struct {
	Raw  uint16 `yaml:"raw"`
	Step int    `yaml:"step"`
}

func defaultConfig() simConfig {
	return simConfig{
		Meter: config.Default(),
		Inputs: map[uint8]inputConfig{
			3: {Raw: 0},
			4: {Raw: 511},
			5: {Raw: uint16(adc.MaxSample)},
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (simConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	// A file that lists inputs replaces the default set rather than merging.
	inputs := cfg.Inputs
	cfg.Inputs = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Inputs == nil {
		cfg.Inputs = inputs
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c simConfig) validate() error {
	if err := c.Meter.Validate(); err != nil {
		return err
	}
	for ch, in := range c.Inputs {
		if ch > 15 {
			return fmt.Errorf("input %d: no such mux channel", ch)
		}
		if in.Raw > uint16(adc.MaxSample) {
			return fmt.Errorf("input %d: raw %d above %d", ch, in.Raw, adc.MaxSample)
		}
	}
	if len(c.Inputs) == 0 {
		return errors.New("no inputs")
	}
	return nil
}

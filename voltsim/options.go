package main

import (
	"github.com/warthog618/config"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
)

// options are the run settings. Each one can come from the command line,
// from a VOLTSIM_ environment variable or from the defaults, in that order.
type options struct {
	configPath string
	cycles     int
	realtime   bool
	verbose    bool
}

func loadOptions(args []string) options {
	def := dict.New(dict.WithMap(map[string]interface{}{
		"config":   "",
		"cycles":   0,
		"realtime": false,
		"verbose":  false,
	}))
	flags := []pflag.Flag{
		{Short: 'c', Name: "config"},
		{Short: 'n', Name: "cycles"},
	}
	cfg := config.New(
		pflag.New(pflag.WithFlags(flags), pflag.WithCommandLine(args)),
		env.New(env.WithEnvPrefix("VOLTSIM_")),
		config.WithDefault(def))
	cfg = cfg.GetConfig("", config.WithMust)
	return options{
		configPath: cfg.MustGet("config").String(),
		cycles:     cfg.MustGet("cycles").Int(),
		realtime:   cfg.MustGet("realtime").Bool(),
		verbose:    cfg.MustGet("verbose").Bool(),
	}
}

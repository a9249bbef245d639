/*
 * config.go, part of biosym.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

//Config holds the settings that can be given in a TOML file with -config.
//Command line flags, when given, take precedence.
type Config struct {
	Title            string  `toml:"title"`
	CompressionLevel int     `toml:"compression_level"`
	Frame            int     `toml:"frame"`
	PlotWidth        float64 `toml:"plot_width"`  //cm
	PlotHeight       float64 `toml:"plot_height"` //cm
}

//DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		PlotWidth:  12,
		PlotHeight: 12,
	}
}

//LoadConfig reads the TOML file path on top of the defaults.
//An empty path just returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("unknown keys in config file %s: %v", path, und)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

//Validate checks that the values in the configuration make sense.
func (C *Config) Validate() error {
	if C.Frame < 0 {
		return fmt.Errorf("frame must be 0 or larger, got %d", C.Frame)
	}
	if C.PlotWidth < 0 || C.PlotHeight < 0 {
		return fmt.Errorf("plot dimensions can't be negative")
	}
	return nil
}

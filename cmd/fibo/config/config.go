// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package config

import (
	"errors"
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"

	"github.com/gudals2040/250911-first-repo/fib"
)

type Config struct {
	Bound      int   `yaml:"bound"`
	Index      int   `yaml:"index"`
	LargeN     int   `yaml:"large_n"`
	NaiveLimit int   `yaml:"naive_limit"`
	Bench      Bench `yaml:"bench"`
	Plot       Plot  `yaml:"plot"`
}

type Bench struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

type Plot struct {
	Bound  int  `yaml:"bound"`
	Width  uint `yaml:"width"`
	Height uint `yaml:"height"`
}

func Default() Config {
	return Config{
		Bound:      10,
		Index:      15,
		LargeN:     40,
		NaiveLimit: 45,
		Bench: Bench{
			From: 20,
			To:   40,
			Step: 5,
		},
		Plot: Plot{
			Bound:  20,
			Width:  800,
			Height: 400,
		},
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Bound < 0:
		return errors.New("bound must not be negative")
	case c.LargeN < 0:
		return errors.New("large_n must not be negative")
	case c.NaiveLimit < 0:
		return errors.New("naive_limit must not be negative")
	case c.Bench.From < 0 || c.Bench.To < c.Bench.From:
		return fmt.Errorf("bench range %d..%d is invalid", c.Bench.From, c.Bench.To)
	case c.Bench.Step < 1:
		return errors.New("bench step must be positive")
	case c.Plot.Bound < 0 || c.Plot.Bound > fib.MaxIndex:
		return fmt.Errorf("plot bound must be between 0 and %d", fib.MaxIndex)
	case c.Plot.Width == 0 || c.Plot.Height == 0:
		return errors.New("plot size must be positive")
	}
	return nil
}

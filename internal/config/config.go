// Package config holds run parameters for the visualizer, loadable from
// yaml files and overridable by CLI flags.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mpetriv/lcgviz/internal/lcg"
)

const (
	DefaultModulus    = 60
	DefaultMultiplier = 7
	DefaultIncrement  = 3
	DefaultSeed       = 1
	DefaultDelayMs    = 100
	DefaultTheme      = "phosphor"
	DefaultBins       = 10
)

type Config struct {
	Modulus    int64  `yaml:"modulus"`
	Multiplier int64  `yaml:"multiplier"`
	Increment  int64  `yaml:"increment"`
	Seed       int64  `yaml:"seed"`
	DelayMs    int    `yaml:"delay_ms"`
	Theme      string `yaml:"theme"`
	Bins       int    `yaml:"bins"`
}

func DefaultConfig() *Config {
	return &Config{
		Modulus:    DefaultModulus,
		Multiplier: DefaultMultiplier,
		Increment:  DefaultIncrement,
		Seed:       DefaultSeed,
		DelayMs:    DefaultDelayMs,
		Theme:      DefaultTheme,
		Bins:       DefaultBins,
	}
}

// Load reads a config file, overlaying it on the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the yaml file at path onto cfg in place. Fields absent
// from the file keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into engine parameters.
func (c *Config) Params() lcg.Params {
	return lcg.Params{
		Modulus:    c.Modulus,
		Multiplier: c.Multiplier,
		Increment:  c.Increment,
		Seed:       c.Seed,
	}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/decaylab/internal/decay"
)

const (
	DefaultInitial  = 1.0
	DefaultDecay    = 2.0
	DefaultDt       = 0.1
	DefaultDuration = 4.0
	DefaultTheta    = 0.5
	DefaultLevels   = 5
)

type Config struct {
	Initial  float64   `yaml:"initial"`
	Decay    float64   `yaml:"decay"`
	Dt       float64   `yaml:"dt"`
	Duration float64   `yaml:"duration"`
	Theta    float64   `yaml:"theta"`
	Thetas   []float64 `yaml:"thetas"`
	Levels   int       `yaml:"levels"`
}

func DefaultConfig() *Config {
	return &Config{
		Initial:  DefaultInitial,
		Decay:    DefaultDecay,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Theta:    DefaultTheta,
		Thetas:   []float64{0, 0.5, 1},
		Levels:   DefaultLevels,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the file values onto solver parameters.
func (c *Config) Params() decay.Params {
	return decay.Params{
		I:     c.Initial,
		A:     c.Decay,
		T:     c.Duration,
		Dt:    c.Dt,
		Theta: c.Theta,
	}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFunction = "gamma"
	DefaultProblem  = "sqrt2"
	DefaultFrom     = 1.0
	DefaultTo       = 5.0
	DefaultSamples  = 200
	DefaultTol      = 1e-10
	DefaultMaxIter  = 100
)

type Config struct {
	Function string       `yaml:"function"`
	Problem  string       `yaml:"problem"`
	From     float64      `yaml:"from"`
	To       float64      `yaml:"to"`
	Samples  int          `yaml:"samples"`
	Solver   SolverConfig `yaml:"solver"`
}

type SolverConfig struct {
	Guess   float64 `yaml:"guess"`
	Tol     float64 `yaml:"tol"`
	MaxIter int     `yaml:"max_iter"`
}

func DefaultConfig() *Config {
	return &Config{
		Function: DefaultFunction,
		Problem:  DefaultProblem,
		From:     DefaultFrom,
		To:       DefaultTo,
		Samples:  DefaultSamples,
		Solver: SolverConfig{
			Guess:   1.0,
			Tol:     DefaultTol,
			MaxIter: DefaultMaxIter,
		},
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

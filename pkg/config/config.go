// Package config loads solver defaults from an optional TOML file.
//
// Precedence, applied by the CLI layer: command-line flags win over a
// loaded config file, which wins over the built-in defaults declared here.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/adharris/fvswalk/pkg/errors"
)

// Config holds the simulation parameters a solver run needs. Zero values
// are not meaningful; use Default or LoadConfig to obtain one.
type Config struct {
	Agents          uint    `toml:"agents"`
	Steps           uint    `toml:"steps"`
	Batches         uint    `toml:"batches"`
	ChangeThreshold float64 `toml:"change_threshold"`
}

// Default returns the built-in defaults from §6.3 of the interface spec.
func Default() Config {
	return Config{
		Agents:          1000,
		Steps:           1000,
		Batches:         250,
		ChangeThreshold: 0.001,
	}
}

// LoadConfig decodes a TOML file at path into a Config seeded with Default,
// so a file that sets only some fields leaves the rest at their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "load config %s", path)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if err := errors.ValidateAgents(int(cfg.Agents)); err != nil {
		return err
	}
	if err := errors.ValidateSteps(int(cfg.Steps)); err != nil {
		return err
	}
	if err := errors.ValidateBatches(int(cfg.Batches)); err != nil {
		return err
	}
	return errors.ValidateChangeThreshold(cfg.ChangeThreshold)
}

// Package config loads the game rules (YAML) and the application settings
// (flags, environment, settings file).
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Rules are the tunable game rules.
type Rules struct {
	Spawn SpawnRules `yaml:"spawn"`

	// Source names where the rules were read from.
	Source string `yaml:"-"`
}

// SpawnRules control how tiles enter the board.
type SpawnRules struct {
	InitialTiles int                 `yaml:"initial_tiles"`
	Weights      []engine.RankWeight `yaml:"weights"`
}

// Policy converts the rules into an engine spawn policy.
func (r Rules) Policy() engine.SpawnPolicy {
	return engine.SpawnPolicy{
		InitialTiles: r.Spawn.InitialTiles,
		Weights:      append([]engine.RankWeight(nil), r.Spawn.Weights...),
	}
}

// Validate rejects rules the engine cannot run with.
func (r Rules) Validate() error {
	if err := r.Policy().Validate(); err != nil {
		return fmt.Errorf("config: invalid rules: %w", err)
	}
	return nil
}

// YAML renders the rules in the same format LoadRules reads.
func (r Rules) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode rules: %w", err)
	}
	return data, nil
}

// ParseRules decodes and validates rules from YAML.
func ParseRules(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("config: cannot parse rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

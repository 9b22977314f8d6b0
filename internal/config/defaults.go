package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// SourceEmbedded is the Source of the built-in rules.
const SourceEmbedded = "embedded"

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	p := engine.DefaultSpawnPolicy()
	return Rules{
		Spawn: SpawnRules{
			InitialTiles: p.InitialTiles,
			Weights:      p.Weights,
		},
		Source: SourceEmbedded,
	}
}

// DefaultRulesYAML returns the embedded rules file.
func DefaultRulesYAML() []byte {
	return append([]byte(nil), defaultRulesYAML...)
}

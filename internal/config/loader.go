package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDir is the per-user directory under $HOME.
const AppDir = ".slide2048"

// LoadRules loads the game rules.
// Search order: customPath -> ~/.slide2048/rules.yaml -> ./configs/rules.yaml -> embedded default.
// A custom path must exist and be valid; the other files are skipped when
// missing or invalid.
func LoadRules(customPath string) (Rules, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Rules{}, fmt.Errorf("config: cannot read rules %s: %w", customPath, err)
		}
		r, err := ParseRules(data)
		if err != nil {
			return Rules{}, fmt.Errorf("%s: %w", customPath, err)
		}
		r.Source = customPath
		return r, nil
	}

	candidates := []string{userConfigPath("rules.yaml"), filepath.Join("configs", "rules.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if r, err := ParseRules(data); err == nil {
			r.Source = path
			return r, nil
		}
	}

	r, err := ParseRules(defaultRulesYAML)
	if err != nil {
		return DefaultRules(), nil
	}
	r.Source = SourceEmbedded
	return r, nil
}

// userConfigPath returns a path under ~/.slide2048, or "" without a home
// directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, filename)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SLIDE2048_SEED.
const EnvPrefix = "SLIDE2048"

// Settings are the application settings shared by all commands.
type Settings struct {
	Seed  int64       `mapstructure:"seed"`
	FPS   int         `mapstructure:"fps"`
	DB    string      `mapstructure:"db"`
	Rules string      `mapstructure:"rules"`
	Log   LogSettings `mapstructure:"log"`
}

// LogSettings configure diagnostics output.
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// flagKeys maps viper keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"seed":      "seed",
	"fps":       "fps",
	"db":        "db",
	"rules":     "rules",
	"log.file":  "log-file",
	"log.level": "log-level",
}

// LoadSettings resolves settings from, in increasing priority: defaults,
// the settings file, SLIDE2048_* environment variables and flags that were
// set explicitly. settingsFile overrides the default
// ~/.slide2048/config.yaml location; SLIDE2048_CONFIG is used when it is
// empty.
func LoadSettings(flags *pflag.FlagSet, settingsFile string) (Settings, error) {
	v := viper.New()

	v.SetDefault("seed", 0)
	v.SetDefault("fps", 60)
	v.SetDefault("db", filepath.Join("~", AppDir, "journal.db"))
	v.SetDefault("rules", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	if settingsFile == "" {
		settingsFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := settingsFile != ""
	if explicit {
		v.SetConfigFile(settingsFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, AppDir))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: cannot read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal settings: %w", err)
	}
	if s.FPS <= 0 {
		return Settings{}, fmt.Errorf("config: fps must be positive, got %d", s.FPS)
	}
	return s, nil
}

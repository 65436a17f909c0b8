// Package config loads runtime settings and the tile color theme.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppDir is the per-user directory under $HOME holding the database,
// the SSH host key and optional config files.
const AppDir = ".t2048"

// EnvPrefix prefixes every environment override, e.g. T2048_DB_PATH.
const EnvPrefix = "T2048"

// Settings holds application configuration.
type Settings struct {
	DBPath  string        `mapstructure:"db_path"`
	Profile string        `mapstructure:"profile"`
	Seed    int64         `mapstructure:"seed"`
	Theme   string        `mapstructure:"theme"`
	Rules   RulesSettings `mapstructure:"rules"`
	Log     LogSettings   `mapstructure:"log"`
	SSH     SSHSettings   `mapstructure:"ssh"`
}

// RulesSettings tweaks game rules.
type RulesSettings struct {
	// SkipNoopMoves suppresses the tile spawn when a move leaves the
	// board unchanged.
	SkipNoopMoves bool `mapstructure:"skip_noop_moves"`
}

// LogSettings controls logging output.
type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SSHSettings configures the serve command.
type SSHSettings struct {
	Address     string        `mapstructure:"address"`
	HostKey     string        `mapstructure:"host_key"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// flagKeys maps command-line flag names to settings keys.
var flagKeys = map[string]string{
	"db":           "db_path",
	"profile":      "profile",
	"seed":         "seed",
	"theme":        "theme",
	"skip-noop":    "rules.skip_noop_moves",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"ssh":          "ssh.address",
	"host-key":     "ssh.host_key",
	"idle-timeout": "ssh.idle_timeout",
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	v.SetDefault("db_path", filepath.Join(home, AppDir, "t2048.db"))
	v.SetDefault("profile", "local")
	v.SetDefault("seed", 0)
	v.SetDefault("theme", "")
	v.SetDefault("rules.skip_noop_moves", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("ssh.address", ":23234")
	v.SetDefault("ssh.host_key", filepath.Join(home, AppDir, "host_key"))
	v.SetDefault("ssh.idle_timeout", 30*time.Minute)
}

// Load reads settings from defaults, an optional config file, the
// environment and flags, in increasing priority. configFile may be empty.
// flags may be nil; only flags the user actually set override lower layers.
func Load(configFile string, flags *pflag.FlagSet) (Settings, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, AppDir))
		}
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if s.Profile == "" {
		s.Profile = "local"
	}
	return s, nil
}

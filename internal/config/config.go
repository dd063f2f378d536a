// Package config loads twinpane settings from defaults, an optional YAML file,
// TWINPANE_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TWINPANE_EDITOR.
const EnvPrefix = "TWINPANE"

// Config holds application configuration.
type Config struct {
	Editor   string        `mapstructure:"editor"`
	StartDir string        `mapstructure:"start_dir"`
	Ignore   []string      `mapstructure:"ignore"`
	Watch    bool          `mapstructure:"watch"`
	Preview  PreviewConfig `mapstructure:"preview"`
	LogFile  string        `mapstructure:"log_file"`
	LogLevel string        `mapstructure:"log_level"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// PreviewConfig bounds the preview pane.
type PreviewConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
	TabWidth int   `mapstructure:"tab_width"`
}

// Options selects where Load looks.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
	// Flags are bound on top of every other source. Only flags the user
	// actually set override the file and environment.
	Flags *pflag.FlagSet
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"editor":    "editor",
	"log-file":  "log_file",
	"log-level": "log_level",
}

// Load reads configuration from file and env.
func Load(opts Options) (Config, error) {
	v := viper.New()

	v.SetDefault("editor", "")
	v.SetDefault("start_dir", "")
	v.SetDefault("ignore", []string{})
	v.SetDefault("watch", true)
	v.SetDefault("preview.max_bytes", 1<<20)
	v.SetDefault("preview.tab_width", 4)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigType("yaml")
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if f := opts.Flags.Lookup("no-watch"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("watch", false)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.File = v.ConfigFileUsed()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if c.Preview.MaxBytes <= 0 {
		return fmt.Errorf("preview.max_bytes must be positive, got %d", c.Preview.MaxBytes)
	}
	if c.Preview.TabWidth <= 0 {
		return fmt.Errorf("preview.tab_width must be positive, got %d", c.Preview.TabWidth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// DefaultDir is $XDG_CONFIG_HOME/twinpane, or the platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "twinpane"), nil
}

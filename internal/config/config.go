// Package config layers edgedraw settings: built-in defaults, an optional
// YAML file, EDGEDRAW_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/ironsheep/edgedraw/internal/canny"
	"github.com/ironsheep/edgedraw/internal/imaging"
)

const (
	// EnvPrefix prefixes every environment override, e.g. EDGEDRAW_WORKERS.
	EnvPrefix = "EDGEDRAW"

	// FileName is the config file searched for in the home directory
	// when no explicit path is given (without extension).
	FileName = ".edgedraw"
)

// Keys shared by the config file, the environment and the flags.
const (
	KeyMethod     = "method"
	KeyOperator   = "operator"
	KeyWorkers    = "workers"
	KeyBlurRadius = "blur_radius"
	KeyLogLevel   = "log_level"
)

// Config holds the resolved settings.
type Config struct {
	Method     string  `mapstructure:"method"`
	Operator   string  `mapstructure:"operator"`
	Workers    int     `mapstructure:"workers"`
	BlurRadius float64 `mapstructure:"blur_radius"`
	LogLevel   string  `mapstructure:"log_level"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// New returns a viper instance carrying the defaults and the environment
// binding. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyMethod, "grayscale")
	v.SetDefault(KeyOperator, "sobel")
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyBlurRadius, 0.0)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	return v
}

// Load reads the config file into v and decodes the merged settings.
//
// An explicit path must exist. Without one, $HOME/.edgedraw.{yaml,json,toml}
// is used when present and silently skipped otherwise.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	if _, perr := canny.ParseMethod(c.Method); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", KeyMethod, perr))
	}
	if _, perr := canny.ParseOperator(c.Operator); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", KeyOperator, perr))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be >= 0, got %d", KeyWorkers, c.Workers))
	}
	if c.BlurRadius < 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be >= 0, got %v", KeyBlurRadius, c.BlurRadius))
	}
	if !validLogLevel(c.LogLevel) {
		err = multierr.Append(err, fmt.Errorf("%s must be one of %s, got %q",
			KeyLogLevel, strings.Join(logLevels, ", "), c.LogLevel))
	}
	return err
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// EdgeOptions converts the settings into detection defaults.
func (c *Config) EdgeOptions() (imaging.EdgeOptions, error) {
	method, err := canny.ParseMethod(c.Method)
	if err != nil {
		return imaging.EdgeOptions{}, err
	}
	op, err := canny.ParseOperator(c.Operator)
	if err != nil {
		return imaging.EdgeOptions{}, err
	}
	return imaging.EdgeOptions{
		Method:     method,
		Operator:   op,
		BlurRadius: c.BlurRadius,
		Workers:    c.Workers,
	}, nil
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

// Package config loads algonotes settings using Viper: an optional
// .algonotes.yaml file, ALGONOTES_<SECTION>_<KEY> environment variables and
// bound command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. ALGONOTES_LOG_LEVEL.
const EnvPrefix = "ALGONOTES"

// ConfigFileEnv names a config file when --config is not given.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full algonotes configuration, loaded from defaults, an
// optional YAML file, ALGONOTES_* variables and flags.
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Measure MeasureConfig `mapstructure:"measure" yaml:"measure"`
	Check   CheckConfig   `mapstructure:"check" yaml:"check"`
}

// LogConfig selects the log level and the text or json handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MeasureConfig drives the measure command.
type MeasureConfig struct {
	// Sizes are the input sizes each workload is run at.
	Sizes   []int         `mapstructure:"sizes" yaml:"sizes"`
	Workers int           `mapstructure:"workers" yaml:"workers"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// CheckConfig drives link checking in the check command.
type CheckConfig struct {
	// External enables HTTP checks of absolute links.
	External  bool          `mapstructure:"external" yaml:"external"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Workers   int           `mapstructure:"workers" yaml:"workers"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Measure: MeasureConfig{
			Sizes:   []int{250, 500, 1000, 2000, 4000},
			Workers: 4,
			Timeout: 2 * time.Minute,
		},
		Check: CheckConfig{
			Timeout:   10 * time.Second,
			Workers:   8,
			UserAgent: "algonotes-check/1.0",
		},
	}
}

// New returns a Viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("measure.sizes", d.Measure.Sizes)
	v.SetDefault("measure.workers", d.Measure.Workers)
	v.SetDefault("measure.timeout", d.Measure.Timeout)
	v.SetDefault("check.external", d.Check.External)
	v.SetDefault("check.timeout", d.Check.Timeout)
	v.SetDefault("check.workers", d.Check.Workers)
	v.SetDefault("check.user_agent", d.Check.UserAgent)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// flagKeys maps flag names to config keys; only flags present in the set are bound.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"sizes":      "measure.sizes",
	"workers":    "measure.workers",
	"timeout":    "measure.timeout",
	"external":   "check.external",
}

// BindFlags binds the known flags of fs to their config keys, so a flag
// that was set on the command line overrides file and environment values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Load reads the config file (path, else $ALGONOTES_CONFIG_FILE, else an
// optional .algonotes.yaml in the working directory), unmarshals and validates.
// An explicitly named file must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".algonotes")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the runners cannot use.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	if len(c.Measure.Sizes) < 3 {
		return fmt.Errorf("%w: measure.sizes needs at least 3 sizes, got %d", ErrInvalidConfig, len(c.Measure.Sizes))
	}
	for _, n := range c.Measure.Sizes {
		if n < 2 {
			return fmt.Errorf("%w: measure.sizes contains %d (minimum 2)", ErrInvalidConfig, n)
		}
	}
	if c.Measure.Workers < 1 {
		return fmt.Errorf("%w: measure.workers must be positive", ErrInvalidConfig)
	}
	if c.Measure.Timeout <= 0 {
		return fmt.Errorf("%w: measure.timeout must be positive", ErrInvalidConfig)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("%w: check.workers must be positive", ErrInvalidConfig)
	}
	if c.Check.Timeout <= 0 {
		return fmt.Errorf("%w: check.timeout must be positive", ErrInvalidConfig)
	}

	return nil
}

// WriteYAML writes c in the config-file format.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/aoc2019/core"
)

// Config is the content of a run configuration file.
//
//	step_limit = 100000
//	freq_ghz   = 1.0
//	log_level  = "info"
//	log_format = "json"
//
// The same keys are accepted in YAML.
type Config struct {
	StepLimit int     `toml:"step_limit" yaml:"step_limit"`
	FreqGHz   float64 `toml:"freq_ghz" yaml:"freq_ghz"`
	LogLevel  string  `toml:"log_level" yaml:"log_level"`
	LogFormat string  `toml:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		StepLimit: 0,
		FreqGHz:   1,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load reads a configuration file. Files ending in .yaml or .yml are YAML,
// anything else is TOML. Keys the file leaves out keep their default
// values. Unknown keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot read %s", path)
	}

	c := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &c)
	default:
		err = decodeTOML(data, &c)
	}

	if err != nil {
		return Config{}, errors.Wrapf(err, "parse error in %s", path)
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}

	return c, nil
}

func decodeTOML(data []byte, c *Config) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown key %s", undecoded[0])
	}

	return nil
}

func decodeYAML(data []byte, c *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks the values that the platform cannot work with.
func (c Config) Validate() error {
	if c.StepLimit < 0 {
		return errors.Errorf("step_limit must not be negative, got %d",
			c.StepLimit)
	}

	if c.FreqGHz <= 0 {
		return errors.Errorf("freq_ghz must be positive, got %g", c.FreqGHz)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return errors.Errorf("log_format must be json or text, got %q",
			c.LogFormat)
	}

	return nil
}

// ParseLevel maps a level name to a slog level. "trace" is below debug and
// enables the per-instruction records of the core.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Errorf("unknown log level %q", name)
	}
}

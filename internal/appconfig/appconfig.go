// internal/appconfig/appconfig.go
// Package appconfig manages loading, validating and interpreting application configuration.
package appconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/parabolic/internal/parabola"
	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is checked when the default path does not exist.
	legacyConfigPath = "config.json"
	// defaultLogFile is used when the config leaves logFile empty.
	defaultLogFile = "parabolic.log"
	// EnvPrefix prefixes environment overrides, e.g. PARABOLIC_SEED.
	EnvPrefix = "PARABOLIC"
)

//go:embed schema.json
var configSchema []byte

// ErrInvalidConfig is wrapped by every schema validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the top-level application configuration.
type Config struct {
	Debug        bool   `json:"debug" mapstructure:"debug" yaml:"debug"`
	LogFile      string `json:"logFile,omitempty" mapstructure:"logFile" yaml:"logFile,omitempty"`
	Seed         int64  `json:"seed" mapstructure:"seed" yaml:"seed"`
	GraphRange   int    `json:"graphRange" mapstructure:"graphRange" yaml:"graphRange"`
	ShowEquation bool   `json:"showEquation" mapstructure:"showEquation" yaml:"showEquation"`
	NoColor      bool   `json:"noColor" mapstructure:"noColor" yaml:"noColor"`
	ConfigPath   string `json:"-" mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when no file, flag or environment
// variable says otherwise.
func Default() Config {
	return Config{
		LogFile:      defaultLogFile,
		GraphRange:   parabola.DefaultGraphRange,
		ShowEquation: true,
	}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// PlotRange returns the half-width of the plotted domain, applying a default if not set.
func (c Config) PlotRange() int {
	if c.GraphRange <= 0 {
		return parabola.DefaultGraphRange
	}
	return c.GraphRange
}

// Validate checks c against the embedded JSON schema.
func Validate(c Config) error {
	return validate(gojsonschema.NewGoLoader(c))
}

func validate(document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(configSchema), document)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, ", "))
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath validates the raw file against the schema before decoding it.
func loadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := validate(gojsonschema.NewBytesLoader(data)); err != nil {
		return Config{}, err
	}

	config := Default()
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
